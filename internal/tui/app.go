package tui

import (
	"todo-cli/internal/imui"
	"todo-cli/internal/model"
	"todo-cli/internal/mutate"

	"github.com/charmbracelet/bubbles/key"
)

// App is the per-frame logic of the two-list screen. It is independent of the
// terminal backend: hosts feed it keys through the Ui and call Frame once per
// render pass.
type App struct {
	lists *model.Lists

	todoCur int
	doneCur int
	panel   model.Status

	editing bool
	editCur int

	notification string
	quit         bool

	keys keyMap
}

func NewApp(lists *model.Lists, notification string) *App {
	if lists == nil {
		lists = &model.Lists{}
	}
	return &App{
		lists:        lists,
		panel:        model.StatusTodo,
		notification: notification,
		keys:         defaultKeyMap(),
	}
}

func (a *App) Lists() *model.Lists  { return a.lists }
func (a *App) Panel() model.Status  { return a.panel }
func (a *App) Editing() bool        { return a.editing }
func (a *App) Notification() string { return a.notification }
func (a *App) Quit() bool           { return a.quit }

func (a *App) Cursor(s model.Status) int { return *a.cursor(s) }

// KeyPressed is called by the host when a new key arrives, before the frame
// that will see it.
func (a *App) KeyPressed() { a.notification = "" }

func (a *App) cursor(s model.Status) *int {
	if s == model.StatusDone {
		return &a.doneCur
	}
	return &a.todoCur
}

// Frame lays out the whole screen and applies the pending key, if any.
func (a *App) Frame(ui *imui.Ui, width int) {
	column := width / 2

	ui.Begin(imui.V(0, 0), imui.Vertical)
	{
		ui.LabelFixedWidth(a.notification, width, imui.RegularPair)
		ui.LabelFixedWidth("", width, imui.RegularPair)

		ui.BeginLayout(imui.Horizontal)
		{
			a.panelColumn(ui, model.StatusTodo, column)
			a.panelColumn(ui, model.StatusDone, column)
		}
		ui.EndLayout()
	}
	ui.End()

	if k, ok := ui.TakeKey(); ok && key.Matches(k, a.keys.Quit) {
		a.quit = true
	}
}

func (a *App) panelColumn(ui *imui.Ui, st model.Status, width int) {
	ui.BeginLayout(imui.Vertical)
	{
		list := a.lists.Of(st)
		if a.panel == st {
			a.activeColumn(ui, st, width)
		} else {
			ui.LabelFixedWidth(st.String(), width, imui.RegularPair)
			for _, title := range *list {
				ui.LabelFixedWidth(itemLine(st, title), width, imui.RegularPair)
			}
		}
	}
	ui.EndLayout()
}

func (a *App) activeColumn(ui *imui.Ui, st model.Status, width int) {
	list := a.lists.Of(st)
	cur := a.cursor(st)

	ui.LabelFixedWidth(st.String(), width, imui.HighlightPair)
	for i := range *list {
		if i != *cur {
			ui.LabelFixedWidth(itemLine(st, (*list)[i]), width, imui.RegularPair)
			continue
		}
		if a.editing {
			ui.EditField(&(*list)[i], &a.editCur, width)
			// While editing, whatever the field left behind is swallowed.
			if k, ok := ui.TakeKey(); ok && key.Matches(k, a.keys.Commit) {
				a.editing = false
			}
			continue
		}
		ui.LabelFixedWidth(itemLine(st, (*list)[i]), width, imui.HighlightPair)
		if k, ok := ui.PeekKey(); ok && key.Matches(k, a.keys.Rename) {
			a.editing = true
			a.editCur = len([]rune((*list)[i]))
			ui.ClearKey()
		}
	}

	if k, ok := ui.TakeKey(); ok {
		if !a.command(st, k) {
			ui.PutKey(k)
		}
	}
}

// command applies a list-mode key to the active panel. It reports whether the
// key was used.
func (a *App) command(st model.Status, k imui.Key) bool {
	list := a.lists.Of(st)
	cur := a.cursor(st)

	switch {
	case key.Matches(k, a.keys.DragUp):
		mutate.DragUp(*list, cur)
	case key.Matches(k, a.keys.DragDown):
		mutate.DragDown(*list, cur)
	case key.Matches(k, a.keys.Up):
		mutate.Up(cur)
	case key.Matches(k, a.keys.Down):
		mutate.Down(*list, cur)
	case key.Matches(k, a.keys.First):
		mutate.First(cur)
	case key.Matches(k, a.keys.Last):
		mutate.Last(*list, cur)
	case key.Matches(k, a.keys.Insert):
		if st != model.StatusTodo {
			a.notification += "Can't insert new DONE items. Only TODO is allowed."
			break
		}
		mutate.Insert(list, cur, "")
		a.editCur = 0
		a.editing = true
		a.notification += "What needs to be done?"
	case key.Matches(k, a.keys.Delete):
		if st != model.StatusDone {
			a.notification += "Can't remove items from TODO. Mark it as DONE first."
			break
		}
		mutate.Delete(list, cur)
		a.notification += "Into The Abyss!"
	case key.Matches(k, a.keys.Transfer):
		mutate.Transfer(a.lists.Of(st.Toggle()), list, cur)
		if st == model.StatusTodo {
			a.notification += "DONE!"
		} else {
			a.notification += "No, not done yet..."
		}
	case key.Matches(k, a.keys.Toggle):
		a.panel = a.panel.Toggle()
	case key.Matches(k, a.keys.Help):
		a.notification = a.keys.helpLine()
	default:
		return false
	}
	return true
}

func itemLine(st model.Status, title string) string {
	if st == model.StatusDone {
		return "- [x] " + title
	}
	return "- [ ] " + title
}
