package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/liser/internal/auth"
	"github.com/Makepad-fr/liser/internal/ui"
)

func newLoginCmd(app *App) *cobra.Command {
	var session, token string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the browser session used for requests",
		Long: strings.TrimSpace(`
Copy the sessionid and csrftoken cookies from a logged-in browser session.
They are written to ~/.liser/credentials.json (mode 0600).`),
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, token = strings.TrimSpace(session), strings.TrimSpace(token)
			if session == "" || token == "" {
				return usageErrorf("both --session and --csrftoken are required")
			}
			if err := auth.SaveCredentials(session, token); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "logged in to "+app.cfg.BaseURL)
			return nil
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "Value of the sessionid cookie")
	cmd.Flags().StringVar(&token, "csrftoken", "", "Value of the csrftoken cookie")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget stored credentials",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.DeleteCredentials(); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
