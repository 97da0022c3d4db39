package tui

import (
	"context"
	"errors"
	"log"
	"time"

	"todo-cli/internal/imui"
	"todo-cli/internal/interrupt"

	tea "github.com/charmbracelet/bubbletea"
)

type frameTickMsg struct{}

// teaModel hosts App inside a bubbletea program. Every key and every frame
// tick runs one frame into the grid; View paints the grid.
type teaModel struct {
	app    *App
	ui     *imui.Ui
	grid   *Grid
	theme  Theme
	cancel *interrupt.Handle
	frame  time.Duration

	// fatal holds a usage error raised by a frame; the program quits and the
	// error is re-raised once the terminal is restored.
	fatal error
}

func newTeaModel(app *App, theme Theme, cancel *interrupt.Handle, frame time.Duration) *teaModel {
	grid := NewGrid(0, 0)
	return &teaModel{
		app:    app,
		ui:     imui.New(grid),
		grid:   grid,
		theme:  theme,
		cancel: cancel,
		frame:  frame,
	}
}

func (m *teaModel) Init() tea.Cmd { return m.tick() }

func (m *teaModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(time.Time) tea.Msg { return frameTickMsg{} })
}

func (m *teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.grid.Resize(msg.Width, msg.Height)
		return m, m.step()

	case tea.KeyMsg:
		// One frame per key, as the polling backends do.
		for _, k := range keysFromTea(msg) {
			if k.Kind == imui.KeyCtrlC {
				m.cancel.Trigger()
			} else {
				m.app.KeyPressed()
				m.ui.SetKey(k)
			}
			if cmd := m.step(); cmd != nil {
				return m, cmd
			}
		}
		return m, nil

	case frameTickMsg:
		if cmd := m.step(); cmd != nil {
			return m, cmd
		}
		return m, m.tick()
	}
	return m, nil
}

// step runs one frame. It returns tea.Quit when the loop should end.
func (m *teaModel) step() tea.Cmd {
	if m.cancel.WasTriggered() {
		log.Printf("tui: cancelled")
		return tea.Quit
	}
	if err := m.renderFrame(); err != nil {
		m.fatal = err
		return tea.Quit
	}
	if m.app.Quit() {
		return tea.Quit
	}
	return nil
}

func (m *teaModel) renderFrame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ue *imui.UsageError
			if e, ok := r.(error); ok && errors.As(e, &ue) {
				err = ue
				return
			}
			panic(r)
		}
	}()
	m.grid.Clear()
	m.app.Frame(m.ui, m.grid.Width())
	return nil
}

func (m *teaModel) View() string {
	if m.fatal != nil {
		return ""
	}
	return m.grid.Render(m.theme)
}

func runTea(ctx context.Context, app *App, theme Theme, cancel *interrupt.Handle, frame time.Duration) error {
	m := newTeaModel(app, theme, cancel, frame)
	// Signals are owned by the cancellation handle, not by bubbletea.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithoutSignalHandler())
	log.Printf("tui: bubbletea backend started")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if m.fatal != nil {
		panic(m.fatal)
	}
	return nil
}
