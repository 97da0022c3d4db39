package tui

import (
	"strings"

	"todo-cli/internal/imui"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	DragUp   key.Binding
	DragDown key.Binding
	First    key.Binding
	Last     key.Binding
	Insert   key.Binding
	Delete   key.Binding
	Rename   key.Binding
	Transfer key.Binding
	Commit   key.Binding
	Toggle   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		DragUp:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "drag up")),
		DragDown: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "drag down")),
		First:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first")),
		Last:     key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last")),
		Insert:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Rename:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Transfer: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle done")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "finish editing")),
		Toggle:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// helpLine renders the list-mode bindings on one line for the notification bar.
func (km keyMap) helpLine() string {
	bindings := []key.Binding{
		km.Up, km.Down, km.DragUp, km.DragDown, km.First, km.Last,
		km.Insert, km.Delete, km.Rename, km.Transfer, km.Toggle, km.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// keysFromTea splits a key message into engine keys. bubbletea packs every
// printable byte of one terminal read (fast typing, auto-repeat, paste) into a
// single KeyRunes message; each rune becomes its own key.
func keysFromTea(msg tea.KeyMsg) []imui.Key {
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 1 {
		keys := make([]imui.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, imui.RuneKey(r))
		}
		return keys
	}
	return []imui.Key{keyFromTea(msg)}
}

// keyFromTea maps bubbletea key messages onto engine key classes.
func keyFromTea(msg tea.KeyMsg) imui.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return imui.RuneKey(msg.Runes[0])
		}
	case tea.KeySpace:
		return imui.RuneKey(' ')
	case tea.KeyLeft:
		return imui.Key{Kind: imui.KeyLeft}
	case tea.KeyRight:
		return imui.Key{Kind: imui.KeyRight}
	case tea.KeyUp:
		return imui.Key{Kind: imui.KeyUp}
	case tea.KeyDown:
		return imui.Key{Kind: imui.KeyDown}
	case tea.KeyBackspace:
		return imui.Key{Kind: imui.KeyBackspace}
	case tea.KeyDelete:
		return imui.Key{Kind: imui.KeyDelete}
	case tea.KeyEnter:
		return imui.Key{Kind: imui.KeyEnter}
	case tea.KeyTab:
		return imui.Key{Kind: imui.KeyTab}
	case tea.KeyEsc:
		return imui.Key{Kind: imui.KeyEscape}
	case tea.KeyCtrlC:
		return imui.Key{Kind: imui.KeyCtrlC}
	}
	return imui.Key{Kind: imui.KeyOther, Name: msg.String()}
}

// keyFromTcell maps tcell key events onto engine key classes.
func keyFromTcell(ev *tcell.EventKey) imui.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt == 0 {
			return imui.RuneKey(ev.Rune())
		}
	case tcell.KeyLeft:
		return imui.Key{Kind: imui.KeyLeft}
	case tcell.KeyRight:
		return imui.Key{Kind: imui.KeyRight}
	case tcell.KeyUp:
		return imui.Key{Kind: imui.KeyUp}
	case tcell.KeyDown:
		return imui.Key{Kind: imui.KeyDown}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return imui.Key{Kind: imui.KeyBackspace}
	case tcell.KeyDelete:
		return imui.Key{Kind: imui.KeyDelete}
	case tcell.KeyEnter:
		return imui.Key{Kind: imui.KeyEnter}
	case tcell.KeyTab:
		return imui.Key{Kind: imui.KeyTab}
	case tcell.KeyEscape:
		return imui.Key{Kind: imui.KeyEscape}
	case tcell.KeyCtrlC:
		return imui.Key{Kind: imui.KeyCtrlC}
	}
	return imui.Key{Kind: imui.KeyOther, Name: ev.Name()}
}
