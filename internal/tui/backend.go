package tui

import (
	"context"
	"log"
	"time"

	"todo-cli/internal/imui"
	"todo-cli/internal/interrupt"
)

// Backend is a polling character-grid terminal.
type Backend interface {
	imui.Canvas

	Size() (width, height int)
	DefinePair(p imui.ColorPair, c PairColors)
	// PollKey waits at most timeout for one key.
	PollKey(timeout time.Duration) (imui.Key, bool)
	Clear()
	Flush()
}

// runLoop drives frames on a polling backend until the app quits, the
// cancellation handle fires, or ctx is done. Cancellation is only checked
// between frames.
func runLoop(ctx context.Context, b Backend, app *App, cancel *interrupt.Handle, frame time.Duration) {
	ui := imui.New(b)
	frames := 0
	for !app.Quit() {
		if cancel.WasTriggered() {
			log.Printf("tui: cancelled after %d frames", frames)
			return
		}
		if ctx.Err() != nil {
			log.Printf("tui: context done after %d frames: %v", frames, ctx.Err())
			return
		}

		b.Clear()
		width, _ := b.Size()
		app.Frame(ui, width)
		b.Flush()
		frames++

		k, ok := b.PollKey(frame)
		if !ok {
			continue
		}
		if k.Kind == imui.KeyCtrlC {
			cancel.Trigger()
			continue
		}
		app.KeyPressed()
		ui.SetKey(k)
	}
	log.Printf("tui: quit after %d frames", frames)
}
