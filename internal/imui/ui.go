package imui

import (
	xansi "github.com/charmbracelet/x/ansi"
)

// Ui owns the layout stack and the pending-key slot for one display.
// It is not safe for concurrent use; a single goroutine drives every frame.
type Ui struct {
	canvas  Canvas
	layouts []Layout
	key     Slot
}

func New(canvas Canvas) *Ui {
	return &Ui{canvas: canvas, layouts: make([]Layout, 0, 8)}
}

// Depth returns the number of open layouts.
func (u *Ui) Depth() int { return len(u.layouts) }

// Begin opens the root layout of a frame.
func (u *Ui) Begin(origin Vec2, o Orientation) {
	if len(u.layouts) != 0 {
		usage("Begin", "root layout is already open; missing End()")
	}
	u.layouts = append(u.layouts, Layout{Orientation: o, Origin: origin})
}

// BeginLayout opens a nested layout at the parent's current flow position.
func (u *Ui) BeginLayout(o Orientation) {
	top := u.top("BeginLayout", "can't create a layout outside of Begin() and End()")
	u.layouts = append(u.layouts, Layout{Orientation: o, Origin: top.AvailablePosition()})
}

// EndLayout closes the innermost nested layout and reports its size to the parent.
func (u *Ui) EndLayout() {
	if len(u.layouts) < 2 {
		usage("EndLayout", "unbalanced BeginLayout() and EndLayout() calls")
	}
	child := u.layouts[len(u.layouts)-1]
	u.layouts = u.layouts[:len(u.layouts)-1]
	u.layouts[len(u.layouts)-1].AddWidget(child.Size)
}

// End closes the root layout.
func (u *Ui) End() {
	switch {
	case len(u.layouts) == 0:
		usage("End", "unbalanced Begin() and End() calls")
	case len(u.layouts) > 1:
		usage("End", "nested layouts left open; missing EndLayout()")
	}
	u.layouts = u.layouts[:0]
}

// Root returns the root layout while a frame is open.
func (u *Ui) Root() (Layout, bool) {
	if len(u.layouts) == 0 {
		return Layout{}, false
	}
	return u.layouts[0], true
}

// LabelFixedWidth paints text and reserves width columns for it. Text wider
// than width is not clipped and overdraws whatever follows.
func (u *Ui) LabelFixedWidth(text string, width int, pair ColorPair) {
	top := u.top("LabelFixedWidth", "trying to render label outside of any layout")
	pos := top.AvailablePosition()

	u.canvas.MoveTo(pos.Y, pos.X)
	u.canvas.AddString(text, pair)

	top.AddWidget(V(width, 1))
}

func (u *Ui) Label(text string, pair ColorPair) {
	u.LabelFixedWidth(text, xansi.StringWidth(text), pair)
}

// EditField renders a single-line text box over the caller's buffer and cursor.
// The cursor counts runes. Keys the field has no use for stay pending.
func (u *Ui) EditField(buf *string, cursor *int, width int) {
	top := u.top("EditField", "trying to render edit field outside of any layout")
	pos := top.AvailablePosition()

	rs := []rune(*buf)
	*cursor = min(max(*cursor, 0), len(rs))

	if k, ok := u.key.Take(); ok {
		switch {
		case k.Printable():
			rs = append(rs[:*cursor], append([]rune{k.Rune}, rs[*cursor:]...)...)
			*cursor++
		case k.Kind == KeyLeft:
			if *cursor > 0 {
				*cursor--
			}
		case k.Kind == KeyRight:
			if *cursor < len(rs) {
				*cursor++
			}
		case k.Kind == KeyBackspace:
			if *cursor > 0 {
				*cursor--
				if *cursor < len(rs) {
					rs = append(rs[:*cursor], rs[*cursor+1:]...)
				}
			}
		case k.Kind == KeyDelete:
			if *cursor < len(rs) {
				rs = append(rs[:*cursor], rs[*cursor+1:]...)
			}
		default:
			u.key.Put(k)
		}
		*buf = string(rs)
	}

	u.canvas.MoveTo(pos.Y, pos.X)
	u.canvas.AddString(*buf, RegularPair)
	top.AddWidget(V(width, 1))

	under := " "
	if *cursor < len(rs) {
		under = string(rs[*cursor])
	}
	u.canvas.MoveTo(pos.Y, pos.X+xansi.StringWidth(string(rs[:*cursor])))
	u.canvas.AddString(under, HighlightPair)
}

// SetKey replaces whatever is pending with k.
func (u *Ui) SetKey(k Key) { u.key.Put(k) }

func (u *Ui) TakeKey() (Key, bool) { return u.key.Take() }

func (u *Ui) PeekKey() (Key, bool) { return u.key.Peek() }

// PutKey hands a taken key back for the next consumer.
func (u *Ui) PutKey(k Key) { u.key.Put(k) }

func (u *Ui) HasKey() bool { return u.key.Full() }

func (u *Ui) ClearKey() { u.key.Clear() }

func (u *Ui) top(op, msg string) *Layout {
	if len(u.layouts) == 0 {
		usage(op, msg)
	}
	return &u.layouts[len(u.layouts)-1]
}
