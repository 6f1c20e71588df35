package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/liser/internal/editor"
)

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Edit or delete a section",
	}

	update := func(use, short string, build func(sectionID, value string) editor.Request) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <section-id> <value...>",
			Short: short,
			Args:  minArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.mutate(cmd, build(args[0], strings.Join(args[1:], " ")), false)
			},
		}
	}
	cmd.AddCommand(update("title", "Rename a section", editor.UpdateTitle))
	cmd.AddCommand(update("description", "Change a section description", editor.UpdateDescription))
	cmd.AddCommand(update("position", "Move a section (non-negative integer)", editor.UpdatePosition))

	var yes bool
	del := &cobra.Command{
		Use:   "delete <section-id>",
		Short: "Delete a section (its items are only unlinked)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd, editor.DeleteSection(args[0]), yes)
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.AddCommand(del)

	return cmd
}
