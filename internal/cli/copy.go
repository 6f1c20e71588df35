package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/liser/internal/clipboard"
	"github.com/Makepad-fr/liser/internal/ui"
)

// copyWriter is replaced in tests.
var copyWriter clipboard.Writer

func newCopyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <text...>",
		Short: "Copy text to the system clipboard",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			copied, err := clipboard.New(copyWriter, app.log).Copy(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if copied {
				ui.OK(cmd.OutOrStdout(), strings.TrimPrefix(clipboard.ConfirmLabel, "✔ "))
			}
			return nil
		},
	}
}
