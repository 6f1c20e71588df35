package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/liser/internal/editor"
	"github.com/Makepad-fr/liser/internal/fragment"
	"github.com/Makepad-fr/liser/internal/ui"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Find items and manage their section membership",
	}

	var yesRemove, yesAssociate bool

	remove := &cobra.Command{
		Use:   "remove <section-id> <item-id>",
		Short: "Remove an item from a section",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd, editor.RemoveItem(args[0], args[1]), yesRemove)
		},
	}
	remove.Flags().BoolVarP(&yesRemove, "yes", "y", false, "Do not ask for confirmation")

	associate := &cobra.Command{
		Use:   "associate <section-id> <item-id>",
		Short: "Add an existing item to a section",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd, editor.Associate(args[0], args[1]), yesAssociate)
		},
	}
	associate.Flags().BoolVarP(&yesAssociate, "yes", "y", false, "Do not ask for confirmation")

	search := &cobra.Command{
		Use:   "search <section-id> [query...]",
		Short: "Search items that can be added to a section",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := app.editor()
			if err != nil {
				return err
			}
			content, err := ed.Search(cmd.Context(), strings.Join(args[1:], " "), args[0])
			if err != nil {
				return err
			}
			items, err := fragment.ParseItems(content)
			if err != nil {
				return err
			}
			t := ui.Current()
			var lines []string
			if len(items) == 0 {
				text := fragment.PlainText(content)
				if text == "" {
					text = "no matching items"
				}
				lines = append(lines, ui.Paint(t.Muted, text))
			}
			for _, it := range items {
				lines = append(lines, fmt.Sprintf("%s %s %s", ui.Paint(t.Item, t.ItemGlyph), it.Title, ui.Dim("#"+it.ID)))
			}
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}

	cmd.AddCommand(search, associate, remove)
	return cmd
}
