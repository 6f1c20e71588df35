// Package fragment turns the server-rendered HTML fragments into view data.
//
// Markup contract: a section is any element carrying data-section-id; its
// title, description and position come from form controls named title,
// description and position inside it (falling back to data-section-title,
// data-description and data-position attributes). Item rows carry
// data-item-id and are titled by data-item-title or their text. Bag lists
// carry data-baglist-id.
package fragment

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/Makepad-fr/liser/internal/model"
)

const (
	attrSectionID = "data-section-id"
	attrItemID    = "data-item-id"
	attrItemTitle = "data-item-title"
	attrBagListID = "data-baglist-id"
)

func parse(src string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	return doc, nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// controls inside a row are not part of its title
var skipText = map[string]bool{"button": true, "script": true, "style": true}

func text(root *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		if n != root && n.Type == html.ElementNode && skipText[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(strings.Fields(b.String()), " ")
}

func itemFrom(n *html.Node, id string) model.Item {
	title, ok := attr(n, attrItemTitle)
	if !ok || strings.TrimSpace(title) == "" {
		title = text(n)
	}
	return model.Item{ID: id, Title: strings.TrimSpace(title)}
}

// ParseSections extracts sections, in document order, with their items.
// An element repeating its enclosing section's id (a remove button, say)
// belongs to that section.
func ParseSections(src string) ([]model.Section, error) {
	doc, err := parse(src)
	if err != nil {
		return nil, err
	}

	var out []*model.Section
	var walk func(n *html.Node, cur *model.Section, seen map[string]bool)
	walk = func(n *html.Node, cur *model.Section, seen map[string]bool) {
		if n.Type == html.ElementNode {
			if id, ok := attr(n, attrSectionID); ok && id != "" && (cur == nil || cur.ID != id) {
				s := &model.Section{ID: id, Items: []model.Item{}}
				s.Title = trimmedAttr(n, "data-section-title")
				s.Description = trimmedAttr(n, "data-description")
				s.Position = trimmedAttr(n, "data-position")
				out = append(out, s)
				cur, seen = s, map[string]bool{}
			}
			if cur != nil {
				readControl(n, cur)
				if id, ok := attr(n, attrItemID); ok && id != "" && !seen[id] {
					seen[id] = true
					cur.Items = append(cur.Items, itemFrom(n, id))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, cur, seen)
		}
	}
	walk(doc, nil, nil)

	sections := make([]model.Section, 0, len(out))
	for _, s := range out {
		sections = append(sections, *s)
	}
	return sections, nil
}

// trimmedAttr reads a field value the way every control is read: surrounding
// whitespace is dropped, inner newlines are kept.
func trimmedAttr(n *html.Node, key string) string {
	v, _ := attr(n, key)
	return strings.TrimSpace(v)
}

func readControl(n *html.Node, s *model.Section) {
	name, _ := attr(n, "name")
	switch n.Data {
	case "input":
		v := trimmedAttr(n, "value")
		switch name {
		case "title":
			s.Title = v
		case "description":
			s.Description = v
		case "position":
			s.Position = v
		}
	case "textarea":
		if name == "description" {
			var b strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					b.WriteString(c.Data)
				}
			}
			s.Description = strings.TrimSpace(b.String())
		}
	}
}

// ParseItems returns the item candidates of a picker fragment, one per
// distinct data-item-id.
func ParseItems(src string) ([]model.Item, error) {
	doc, err := parse(src)
	if err != nil {
		return nil, err
	}
	var items []model.Item
	seen := map[string]bool{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id, ok := attr(n, attrItemID); ok && id != "" && !seen[id] {
				seen[id] = true
				items = append(items, itemFrom(n, id))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return items, nil
}

// ParseBagLists returns the bag lists offered by the editor page.
func ParseBagLists(src string) ([]model.BagList, error) {
	doc, err := parse(src)
	if err != nil {
		return nil, err
	}
	var lists []model.BagList
	seen := map[string]bool{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id, ok := attr(n, attrBagListID); ok && id != "" && !seen[id] {
				seen[id] = true
				lists = append(lists, model.BagList{ID: id, Title: text(n)})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return lists, nil
}

var strict = bluemonday.StrictPolicy()

// PlainText strips all markup from a fragment and collapses whitespace, for
// fragments that carry a message rather than items.
func PlainText(src string) string {
	s := html.UnescapeString(strict.Sanitize(src))
	return strings.Join(strings.Fields(s), " ")
}
