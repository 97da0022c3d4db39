package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"todo-cli/internal/format"
	"todo-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type App struct {
	Backend    string
	Theme      string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "todo <file-path>",
		Short:         "Two-list TODO/DONE manager for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Edit a list interactively (created on first save)
  todo todo.txt

  # Same, stored in SQLite
  todo todo.db

  # Scriptable commands
  todo list todo.txt
  todo add todo.txt buy milk
  todo done todo.txt 0
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Usage: todo <file-path>")
				return writeErr(cmd, errNoFilePath)
			}
			return runTUI(cmd, app, args[0])
		},
	}

	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "", "Terminal backend (tea|tcell); overrides TODO_BACKEND and config.json")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Color theme (auto|light|dark); overrides TODO_THEME and config.json")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODO_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newTransferCmd(app, "done"))
	cmd.AddCommand(newTransferCmd(app, "undo"))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// config returns the effective UI configuration: config.json, then the
// environment, then flags.
func (app *App) config() (store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return cfg, err
	}
	if app.Backend != "" {
		cfg.Backend = strings.ToLower(strings.TrimSpace(app.Backend))
	}
	if app.Theme != "" {
		cfg.Theme = strings.ToLower(strings.TrimSpace(app.Theme))
	}
	return cfg, cfg.Validate()
}

// setupLogging sends the std logger to TODO_DEBUG_LOG, or discards it so
// nothing is written over the screen.
func setupLogging() (func(), error) {
	path := strings.TrimSpace(os.Getenv("TODO_DEBUG_LOG"))
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "todo")
	if err != nil {
		return func() {}, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

// writeErr prints err to stderr and marks it as reported.
func writeErr(cmd *cobra.Command, err error) error {
	var re reportedError
	if errors.As(err, &re) {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return reportedError{err: err}
}
