// Package editor runs the confirmation-gated mutation flow: validate the
// gesture, (optionally) confirm, send one request, and hand the outcome to
// the view, which patches itself only after the server confirmed success.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Makepad-fr/liser/internal/client"
	"github.com/Makepad-fr/liser/internal/fragment"
	"github.com/Makepad-fr/liser/internal/model"
	"github.com/Makepad-fr/liser/internal/view"
)

// ErrInvalid marks a gesture rejected before any request was sent.
var ErrInvalid = errors.New("invalid input")

// API is the part of the server client the editor drives.
type API interface {
	UpdateSectionTitle(ctx context.Context, sectionID, title string) (client.Result, error)
	UpdateSectionDescription(ctx context.Context, sectionID, description string) (client.Result, error)
	UpdateSectionPosition(ctx context.Context, sectionID, position string) (client.Result, error)
	RemoveItemFromSection(ctx context.Context, sectionID, itemID string) (client.Result, error)
	DeleteSection(ctx context.Context, sectionID string) (client.Result, error)
	AssociateItem(ctx context.Context, sectionID, itemID string) (client.Result, error)
	SearchItems(ctx context.Context, query, sectionID string) (string, error)
	LoadSections(ctx context.Context, bagListID string) (string, error)
}

// Request is one user gesture that may become a mutation.
type Request struct {
	Op        client.Op
	SectionID string
	ItemID    string
	Value     string
}

func UpdateTitle(sectionID, title string) Request {
	return Request{Op: client.OpUpdateSectionTitle, SectionID: sectionID, Value: title}
}

func UpdateDescription(sectionID, description string) Request {
	return Request{Op: client.OpUpdateSectionDescription, SectionID: sectionID, Value: description}
}

func UpdatePosition(sectionID, position string) Request {
	return Request{Op: client.OpUpdateSectionPosition, SectionID: sectionID, Value: position}
}

func RemoveItem(sectionID, itemID string) Request {
	return Request{Op: client.OpRemoveItemFromSection, SectionID: sectionID, ItemID: itemID}
}

func DeleteSection(sectionID string) Request {
	return Request{Op: client.OpDeleteSection, SectionID: sectionID}
}

func Associate(sectionID, itemID string) Request {
	return Request{Op: client.OpAssociateItem, SectionID: sectionID, ItemID: itemID}
}

// Normalize trims the request and checks it can be sent.
func (r Request) Normalize() (Request, error) {
	r.SectionID = strings.TrimSpace(r.SectionID)
	r.ItemID = strings.TrimSpace(r.ItemID)
	r.Value = strings.TrimSpace(r.Value)
	if r.SectionID == "" {
		return r, fmt.Errorf("%w: missing section id", ErrInvalid)
	}
	switch r.Op {
	case client.OpUpdateSectionTitle:
		if r.Value == "" {
			return r, fmt.Errorf("%w: empty title", ErrInvalid)
		}
	case client.OpUpdateSectionDescription:
		if r.Value == "" {
			return r, fmt.Errorf("%w: empty description", ErrInvalid)
		}
	case client.OpUpdateSectionPosition:
		n, err := strconv.Atoi(r.Value)
		if err != nil || n < 0 {
			return r, fmt.Errorf("%w: position must be a non-negative integer", ErrInvalid)
		}
	case client.OpRemoveItemFromSection, client.OpAssociateItem:
		if r.ItemID == "" {
			return r, fmt.Errorf("%w: missing item id", ErrInvalid)
		}
	case client.OpDeleteSection:
	default:
		return r, fmt.Errorf("%w: unknown operation %q", ErrInvalid, r.Op)
	}
	return r, nil
}

// ConfirmMessage is the question asked before the request is sent; empty
// for operations that go straight through.
func (r Request) ConfirmMessage() string {
	switch r.Op {
	case client.OpRemoveItemFromSection:
		return "Remove this item from the section?"
	case client.OpDeleteSection:
		return "Delete this section? Its items are only removed from it, not deleted."
	case client.OpAssociateItem:
		return "Add this item to the section?"
	}
	return ""
}

type Editor struct {
	api API
	log *slog.Logger
}

func New(api API, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.Default()
	}
	return &Editor{api: api, log: log}
}

// Do validates req and sends it. An invalid request returns an outcome
// wrapping ErrInvalid without touching the network.
func (e *Editor) Do(ctx context.Context, req Request) view.Outcome {
	req, err := req.Normalize()
	out := view.Outcome{Op: req.Op, SectionID: req.SectionID, ItemID: req.ItemID, Value: req.Value}
	if err != nil {
		e.log.Debug("request skipped", "op", string(req.Op), "err", err)
		out.Err = err
		return out
	}

	switch req.Op {
	case client.OpUpdateSectionTitle:
		out.Result, out.Err = e.api.UpdateSectionTitle(ctx, req.SectionID, req.Value)
	case client.OpUpdateSectionDescription:
		out.Result, out.Err = e.api.UpdateSectionDescription(ctx, req.SectionID, req.Value)
	case client.OpUpdateSectionPosition:
		out.Result, out.Err = e.api.UpdateSectionPosition(ctx, req.SectionID, req.Value)
	case client.OpRemoveItemFromSection:
		out.Result, out.Err = e.api.RemoveItemFromSection(ctx, req.SectionID, req.ItemID)
	case client.OpDeleteSection:
		out.Result, out.Err = e.api.DeleteSection(ctx, req.SectionID)
	case client.OpAssociateItem:
		out.Result, out.Err = e.api.AssociateItem(ctx, req.SectionID, req.ItemID)
	}
	if out.Err == nil && !out.Result.Success {
		out.Err = &client.ServerError{Op: req.Op, Message: "request failed"}
	}
	return out
}

// Run sends req and applies the outcome to v.
func (e *Editor) Run(ctx context.Context, req Request, v *view.Model) (view.Outcome, view.Effect) {
	out := e.Do(ctx, req)
	return out, v.Apply(out)
}

// Search fetches the picker fragment for query within sectionID.
func (e *Editor) Search(ctx context.Context, query, sectionID string) (string, error) {
	sectionID = strings.TrimSpace(sectionID)
	if sectionID == "" {
		return "", fmt.Errorf("%w: missing section id", ErrInvalid)
	}
	return e.api.SearchItems(ctx, strings.TrimSpace(query), sectionID)
}

// Load fetches and parses the sections of a bag list; a reload is the same call.
func (e *Editor) Load(ctx context.Context, bagListID string) ([]model.Section, error) {
	src, err := e.api.LoadSections(ctx, bagListID)
	if err != nil {
		return nil, err
	}
	sections, err := fragment.ParseSections(src)
	if err != nil {
		e.log.Error("parse sections", "baglist_id", bagListID, "err", err)
		return nil, err
	}
	return sections, nil
}
