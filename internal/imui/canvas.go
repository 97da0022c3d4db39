package imui

// ColorPair names a foreground/background combination defined by the backend.
type ColorPair int16

const (
	RegularPair   ColorPair = 0
	HighlightPair ColorPair = 10
)

// Canvas is the part of a rendering backend the engine draws through.
// Painting is fire-and-forget; nothing is read back.
type Canvas interface {
	MoveTo(row, col int)
	AddString(text string, pair ColorPair)
}
