package tui

import (
	"context"
	"testing"
	"time"

	"todo-cli/internal/imui"
	"todo-cli/internal/interrupt"
	"todo-cli/internal/model"

	"github.com/gdamore/tcell/v2"
)

func newSimBackend(t *testing.T, w, h int) (tcell.SimulationScreen, *tcellBackend) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	b := newTcellBackend(sim, DefaultTheme())
	t.Cleanup(func() {
		b.stop()
		sim.Fini()
	})
	return sim, b
}

func TestTcellBackend_AddStringClips(t *testing.T) {
	sim, b := newSimBackend(t, 6, 2)
	b.MoveTo(1, 3)
	b.AddString("abcdef", imui.HighlightPair)
	b.MoveTo(5, 0)
	b.AddString("offscreen", imui.RegularPair)

	for col, want := range map[int]rune{3: 'a', 4: 'b', 5: 'c'} {
		r, _, st, _ := sim.GetContent(col, 1)
		if r != want {
			t.Fatalf("col %d: got %q want %q", col, r, want)
		}
		if st != b.theme.TcellStyle(imui.HighlightPair) {
			t.Fatalf("col %d: unexpected style", col)
		}
	}
}

func TestTcellBackend_PollKey(t *testing.T) {
	sim, b := newSimBackend(t, 10, 2)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		// Init may queue a resize ahead of the key.
		if k, ok := b.PollKey(50 * time.Millisecond); ok {
			if k.Kind != imui.KeyRune || k.Rune != 'x' {
				t.Fatalf("unexpected key %+v", k)
			}
			return
		}
	}
	t.Fatalf("key never arrived")
}

func TestTcellBackend_PollKeyTimesOut(t *testing.T) {
	_, b := newSimBackend(t, 10, 2)
	// Drain anything Init queued.
	for {
		if _, ok := b.PollKey(20 * time.Millisecond); !ok {
			break
		}
	}
	start := time.Now()
	if _, ok := b.PollKey(20 * time.Millisecond); ok {
		t.Fatalf("expected no key")
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("PollKey returned before its timeout")
	}
}

func TestTcellBackend_RunLoop(t *testing.T) {
	sim, b := newSimBackend(t, 40, 8)
	app := NewApp(&model.Lists{Todos: []string{"a", "b"}, Dones: []string{"c"}}, "")

	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	runLoop(ctx, b, app, interrupt.New(), 5*time.Millisecond)

	if !app.Quit() {
		t.Fatalf("expected q to end the loop; ctx err=%v", ctx.Err())
	}
	if got := app.Lists().Dones; len(got) != 2 || got[1] != "b" {
		t.Fatalf("expected b transferred; dones=%v", got)
	}
	r, _, _, _ := sim.GetContent(20, 2)
	if r != 'D' {
		t.Fatalf("expected DONE header at column 20; got %q", r)
	}
}
