package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/liser/internal/config"
	"github.com/Makepad-fr/liser/internal/fragment"
	"github.com/Makepad-fr/liser/internal/model"
	"github.com/Makepad-fr/liser/internal/store/jsonstore"
	"github.com/Makepad-fr/liser/internal/ui"
)

func newBagListsCmd(app *App) *cobra.Command {
	var cached bool
	cmd := &cobra.Command{
		Use:   "baglists",
		Short: "List the bag lists available in the editor",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			var lists []model.BagList
			if cached {
				st, err := jsonstore.Load(dir)
				if err != nil {
					return err
				}
				lists = st.BagLists
			} else {
				if lists, err = fetchBagLists(cmd, app); err != nil {
					return err
				}
				if err := jsonstore.Update(dir, func(st *jsonstore.State) { st.BagLists = lists }); err != nil {
					app.log.Warn("save state", "err", err)
				}
			}

			t := ui.Current()
			lines := []string{ui.Paint(t.Title, "Bag lists"), ""}
			if len(lists) == 0 {
				lines = append(lines, ui.Paint(t.Muted, "no bag lists"))
			}
			for _, bl := range lists {
				lines = append(lines, fmt.Sprintf("%s %s", ui.Dim(fmt.Sprintf("%4s", bl.ID)), bl.Title))
			}
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
	cmd.Flags().BoolVar(&cached, "cached", false, "Show the list saved by the last fetch without contacting the server")
	return cmd
}

func fetchBagLists(cmd *cobra.Command, app *App) ([]model.BagList, error) {
	c, err := app.client()
	if err != nil {
		return nil, err
	}
	page, err := c.EditorPage(cmd.Context())
	if err != nil {
		return nil, err
	}
	return fragment.ParseBagLists(page)
}

func newSectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "Show the sections and items of the selected bag list",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.bagListID()
			if err != nil {
				return err
			}
			ed, err := app.editor()
			if err != nil {
				return err
			}
			secs, err := ed.Load(cmd.Context(), id)
			if err != nil {
				return err
			}
			ui.Panel(cmd.OutOrStdout(), sectionLines(id, secs))
			return nil
		},
	}
}

func sectionLines(bagListID string, secs []model.Section) []string {
	t := ui.Current()
	items := 0
	for _, s := range secs {
		items += len(s.Items)
	}
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d",
			ui.Paint(t.Title, "Bag list "+bagListID),
			ui.Paint(t.Accent, "Sections"), len(secs),
			ui.Paint(t.Accent, "Items"), items),
		"",
	}
	if len(secs) == 0 {
		return append(lines, ui.Paint(t.Muted, "no sections"))
	}
	for i, s := range secs {
		if i > 0 {
			lines = append(lines, "")
		}
		head := fmt.Sprintf("%s %s %s", ui.Paint(t.Accent, t.SectionGlyph), ui.Paint(t.Title, s.Title), ui.Dim("#"+s.ID))
		if s.Position != "" {
			head += ui.Paint(t.Muted, "  pos "+s.Position)
		}
		lines = append(lines, head)
		if s.Description != "" {
			lines = append(lines, "  "+ui.Paint(t.Muted, ui.Truncate(strings.Join(strings.Fields(s.Description), " "), 72)))
		}
		if len(s.Items) == 0 {
			lines = append(lines, "  "+ui.Paint(t.Muted, "(no items)"))
		}
		for _, it := range s.Items {
			lines = append(lines, fmt.Sprintf("  %s %s %s", ui.Paint(t.Item, t.ItemGlyph), ui.Truncate(it.Title, 72), ui.Dim("#"+it.ID)))
		}
	}
	return lines
}
