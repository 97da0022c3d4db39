package tui

import (
	"context"
	"testing"
	"time"

	"todo-cli/internal/imui"
	"todo-cli/internal/interrupt"
	"todo-cli/internal/model"
)

// scriptBackend replays a fixed key script, one key per poll, on top of a Grid.
type scriptBackend struct {
	*Grid
	keys    []imui.Key
	flushes int
	polls   int
}

func (b *scriptBackend) Size() (int, int)                      { return b.Width(), b.Height() }
func (b *scriptBackend) DefinePair(imui.ColorPair, PairColors) {}
func (b *scriptBackend) Flush()                                { b.flushes++ }
func (b *scriptBackend) PollKey(time.Duration) (imui.Key, bool) {
	b.polls++
	if len(b.keys) == 0 {
		return imui.Key{}, false
	}
	k := b.keys[0]
	b.keys = b.keys[1:]
	return k, true
}

func TestRunLoop_QuitKey(t *testing.T) {
	b := &scriptBackend{
		Grid: NewGrid(40, 10),
		keys: []imui.Key{imui.RuneKey('j'), imui.RuneKey('q')},
	}
	app := NewApp(&model.Lists{Todos: []string{"a", "b"}}, "hello")

	runLoop(context.Background(), b, app, interrupt.New(), time.Millisecond)

	if !app.Quit() {
		t.Fatalf("expected app to quit")
	}
	if b.flushes != 3 {
		t.Fatalf("expected one frame per key plus the first; got %d", b.flushes)
	}
	if app.Cursor(model.StatusTodo) != 1 {
		t.Fatalf("expected j to be applied")
	}
	if app.Notification() != "" {
		t.Fatalf("expected notification cleared by key press")
	}
	if got := b.Line(4); got != "- [ ] b" {
		t.Fatalf("last frame should stay on screen; got %q", got)
	}
}

func TestRunLoop_CancelledBeforeFirstFrame(t *testing.T) {
	b := &scriptBackend{Grid: NewGrid(40, 10)}
	cancel := interrupt.New()
	cancel.Trigger()

	runLoop(context.Background(), b, NewApp(nil, ""), cancel, time.Millisecond)

	if b.flushes != 0 {
		t.Fatalf("expected no frames; got %d", b.flushes)
	}
	if cancel.WasTriggered() {
		t.Fatalf("expected the loop to consume the trigger")
	}
}

func TestRunLoop_CtrlCCancelsAtNextFrame(t *testing.T) {
	b := &scriptBackend{
		Grid: NewGrid(40, 10),
		keys: []imui.Key{{Kind: imui.KeyCtrlC}, imui.RuneKey('j')},
	}
	app := NewApp(&model.Lists{Todos: []string{"a", "b"}}, "")

	runLoop(context.Background(), b, app, interrupt.New(), time.Millisecond)

	if app.Quit() {
		t.Fatalf("ctrl+c must cancel, not quit")
	}
	if b.flushes != 1 || len(b.keys) != 1 {
		t.Fatalf("expected loop to stop before the next frame; flushes=%d remaining=%d", b.flushes, len(b.keys))
	}
	if app.Cursor(model.StatusTodo) != 0 {
		t.Fatalf("ctrl+c must not reach the app")
	}
}

func TestRunLoop_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := &scriptBackend{Grid: NewGrid(40, 10)}
	cancel()

	done := make(chan struct{})
	go func() {
		runLoop(ctx, b, NewApp(nil, ""), interrupt.New(), time.Millisecond)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("runLoop did not observe context cancellation")
	}
}
