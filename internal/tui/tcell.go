package tui

import (
	"context"
	"log"
	"time"

	"todo-cli/internal/imui"
	"todo-cli/internal/interrupt"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
)

// tcellBackend adapts a tcell.Screen to Backend. Events are read by a
// goroutine so PollKey can time out.
type tcellBackend struct {
	screen tcell.Screen
	theme  Theme
	styles map[imui.ColorPair]tcell.Style

	events chan tcell.Event
	done   chan struct{}

	row, col int
}

func newTcellBackend(screen tcell.Screen, theme Theme) *tcellBackend {
	b := &tcellBackend{
		screen: screen,
		theme:  theme,
		styles: map[imui.ColorPair]tcell.Style{},
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	for _, p := range []imui.ColorPair{imui.RegularPair, imui.HighlightPair} {
		b.styles[p] = theme.TcellStyle(p)
	}
	go b.pump()
	return b
}

func (b *tcellBackend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

func (b *tcellBackend) stop() { close(b.done) }

func (b *tcellBackend) Size() (int, int) { return b.screen.Size() }

func (b *tcellBackend) DefinePair(p imui.ColorPair, c PairColors) {
	b.theme.DefinePair(p, c)
	b.styles[p] = b.theme.TcellStyle(p)
}

func (b *tcellBackend) MoveTo(row, col int) { b.row, b.col = row, col }

func (b *tcellBackend) AddString(text string, pair imui.ColorPair) {
	st, ok := b.styles[pair]
	if !ok {
		st = tcell.StyleDefault
	}
	w, h := b.screen.Size()
	if b.row < 0 || b.row >= h {
		return
	}
	for _, r := range text {
		rw := xansi.StringWidth(string(r))
		if rw == 0 {
			continue
		}
		if b.col >= 0 && b.col+rw <= w {
			b.screen.SetContent(b.col, b.row, r, nil, st)
		}
		b.col += rw
	}
}

func (b *tcellBackend) Clear() { b.screen.Clear() }

func (b *tcellBackend) Flush() { b.screen.Show() }

func (b *tcellBackend) PollKey(timeout time.Duration) (imui.Key, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev := <-b.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return keyFromTcell(ev), true
			case *tcell.EventResize:
				b.screen.Sync()
				return imui.Key{}, false
			}
		case <-timer.C:
			return imui.Key{}, false
		}
	}
}

func runTcell(ctx context.Context, app *App, theme Theme, cancel *interrupt.Handle, frame time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	// Fini also runs while a usage error panics through here, restoring the terminal.
	defer screen.Fini()
	screen.HideCursor()

	b := newTcellBackend(screen, theme)
	defer b.stop()

	log.Printf("tui: tcell backend started")
	runLoop(ctx, b, app, cancel, frame)
	return nil
}
