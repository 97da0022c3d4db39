package tui

import (
	"context"
	"fmt"
	"time"

	"todo-cli/internal/interrupt"
	"todo-cli/internal/model"
	"todo-cli/internal/store"
)

type Options struct {
	Config store.Config
	// Cancel is polled once per frame; nil means a fresh, unarmed handle.
	Cancel *interrupt.Handle
	// Notification is shown on the first frame.
	Notification string
}

// Run edits lists interactively until the user quits or cancels. The lists are
// modified in place; saving them is the caller's job.
func Run(ctx context.Context, lists *model.Lists, opts Options) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	cancel := opts.Cancel
	if cancel == nil {
		cancel = interrupt.New()
	}

	applyColorProfilePreference(cfg.NoColor)
	applyThemePreference(cfg.Theme)
	theme := DefaultTheme()

	app := NewApp(lists, opts.Notification)
	frame := time.Duration(cfg.FrameMillis) * time.Millisecond

	switch cfg.Backend {
	case store.BackendTcell:
		return runTcell(ctx, app, theme, cancel, frame)
	case store.BackendTea:
		return runTea(ctx, app, theme, cancel, frame)
	default:
		return fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}
