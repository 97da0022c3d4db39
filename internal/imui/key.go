package imui

// KeyKind classifies a keystroke. Backends translate their own key codes into
// these classes before handing a key to the engine.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
	KeyCtrlC
)

// Key is one input event. Name carries the backend's spelling for KeyOther.
type Key struct {
	Kind KeyKind
	Rune rune
	Name string
}

func RuneKey(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

// Printable reports whether the key is in the visible ASCII range.
func (k Key) Printable() bool {
	return k.Kind == KeyRune && k.Rune >= 32 && k.Rune <= 126
}

// String spells the key the way bubbletea does, so bubbles/key bindings match it.
func (k Key) String() string {
	switch k.Kind {
	case KeyRune:
		if k.Rune == ' ' {
			return " "
		}
		return string(k.Rune)
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "esc"
	case KeyCtrlC:
		return "ctrl+c"
	default:
		return k.Name
	}
}

// Slot holds at most one pending key. Take moves the key out; Put restores it.
type Slot struct {
	key Key
	ok  bool
}

func (s *Slot) Take() (Key, bool) {
	k, ok := s.key, s.ok
	s.key, s.ok = Key{}, false
	return k, ok
}

func (s *Slot) Peek() (Key, bool) {
	return s.key, s.ok
}

func (s *Slot) Put(k Key) {
	s.key, s.ok = k, true
}

func (s *Slot) Clear() {
	s.key, s.ok = Key{}, false
}

func (s *Slot) Full() bool { return s.ok }
