package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/liser/internal/auth"
	"github.com/Makepad-fr/liser/internal/client"
	"github.com/Makepad-fr/liser/internal/config"
	"github.com/Makepad-fr/liser/internal/editor"
	"github.com/Makepad-fr/liser/internal/store/jsonstore"
	"github.com/Makepad-fr/liser/internal/tui"
	"github.com/Makepad-fr/liser/internal/ui"
)

type App struct {
	ConfigPath string
	URL        string
	BagListID  string
	Theme      string
	LogLevel   string
	NoColor    bool

	cfg config.Config
	log *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "liser",
		Short:         "Bag list editor for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Edit a bag list interactively
  liser --baglist 12

  # Scriptable commands
  liser sections --baglist 12
  liser section title 4 "Ropa de abrigo"
  liser item remove 4 31 --yes
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}

	defPath, _ := config.Path()
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("LISER_CONFIG", defPath), "Path to config.yaml")
	cmd.PersistentFlags().StringVar(&app.URL, "url", "", "Server base URL (overrides LISER_URL and config)")
	cmd.PersistentFlags().StringVar(&app.BagListID, "baglist", "", "Bag list id (overrides LISER_BAGLIST and config)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Theme (classic|neon|mono)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newBagListsCmd(app))
	cmd.AddCommand(newSectionsCmd(app))
	cmd.AddCommand(newSectionCmd(app))
	cmd.AddCommand(newItemCmd(app))
	cmd.AddCommand(newCopyCmd(app))

	return cmd
}

// setup resolves configuration: flags win over env, env over the config file.
func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFile(app.ConfigPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if app.URL != "" {
		cfg.BaseURL = strings.TrimRight(strings.TrimSpace(app.URL), "/")
	}
	if app.BagListID != "" {
		cfg.BagListID = strings.TrimSpace(app.BagListID)
	}
	if app.Theme != "" {
		cfg.Theme = app.Theme
	}
	if app.LogLevel != "" {
		cfg.LogLevel = app.LogLevel
	}
	app.cfg = cfg

	ui.SetTheme(cfg.Theme)
	ui.SetColorMode(ui.ColorAuto)
	if app.NoColor {
		ui.SetColorMode(ui.ColorNever)
	}
	app.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	return nil
}

func runTUI(ctx context.Context, app *App) error {
	id, err := app.bagListID()
	if err != nil {
		return err
	}

	// stderr belongs to the alt screen; logs go to a file instead.
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, "liser.log"), "liser")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	app.log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: app.cfg.Level()}))

	ed, err := app.editor()
	if err != nil {
		return err
	}
	return tui.Run(ctx, ed, tui.Options{
		BagListID: id,
		Theme:     app.cfg.Theme,
		Logger:    app.log,
	})
}

// client builds an HTTP client whose cookie jar carries the stored session
// and whose CSRF token is read back from that jar on every request.
func (app *App) client() (*client.Client, error) {
	creds, err := auth.LoadCredentials()
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return nil, fmt.Errorf("%w; run `liser login --session ... --csrftoken ...`", err)
		}
		return nil, err
	}
	jar, err := creds.Jar(app.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	provider, err := auth.NewJarProvider(jar, app.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	opts := []client.Option{
		client.WithJar(jar),
		client.WithLogger(app.log),
		client.WithEndpoints(app.cfg.Endpoints),
	}
	if app.cfg.Timeout > 0 {
		opts = append(opts, client.WithTimeout(app.cfg.Timeout))
	}
	return client.New(app.cfg.BaseURL, provider, opts...), nil
}

func (app *App) editor() (*editor.Editor, error) {
	c, err := app.client()
	if err != nil {
		return nil, err
	}
	return editor.New(c, app.log), nil
}

// bagListID returns the selected bag list, falling back to the one used last,
// and remembers it for the next run.
func (app *App) bagListID() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	id := app.cfg.BagListID
	if id == "" {
		st, err := jsonstore.Load(dir)
		if err != nil {
			app.log.Warn("read state", "err", err)
		}
		id = st.LastBagListID
	}
	if id == "" {
		return "", usageErrorf("no bag list selected; pass --baglist or set LISER_BAGLIST (see `liser baglists`)")
	}
	if err := jsonstore.Update(dir, func(st *jsonstore.State) { st.LastBagListID = id }); err != nil {
		app.log.Warn("save state", "err", err)
	}
	return id, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
