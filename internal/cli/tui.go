package cli

import (
	"context"
	"fmt"
	"log"

	"todo-cli/internal/interrupt"
	"todo-cli/internal/model"
	"todo-cli/internal/store"
	"todo-cli/internal/tui"

	"github.com/spf13/cobra"
)

// runTUI loads path, edits it interactively and saves it. The lists are
// saved on quit and on cancellation alike.
func runTUI(cmd *cobra.Command, app *App, path string) error {
	ctx := cmd.Context()

	cfg, err := app.config()
	if err != nil {
		return writeErr(cmd, err)
	}

	closeLog, err := setupLogging()
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closeLog()

	st := store.Open(path)
	lists, notification, err := loadLists(ctx, st)
	if err != nil {
		return writeErr(cmd, err)
	}

	cancel := interrupt.New()
	cancel.Arm()
	defer cancel.Disarm()

	log.Printf("cli: editing %s with %s backend", path, cfg.Backend)
	if err := tui.Run(ctx, lists, tui.Options{
		Config:       cfg,
		Cancel:       cancel,
		Notification: notification,
	}); err != nil {
		return writeErr(cmd, err)
	}

	if err := st.Save(ctx, lists); err != nil {
		return writeErr(cmd, fmt.Errorf("save %s: %w", path, err))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved state to %s\n", path)
	return nil
}

// loadLists returns the stored lists and the greeting for the first frame.
// A store that has never been saved starts empty.
func loadLists(ctx context.Context, st store.Store) (*model.Lists, string, error) {
	lists, err := st.Load(ctx)
	switch {
	case store.IsNotExist(err):
		return &model.Lists{}, "New file " + st.Path(), nil
	case err != nil:
		return nil, "", err
	}
	return lists, "Loaded file " + st.Path(), nil
}
