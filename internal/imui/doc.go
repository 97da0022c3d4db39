// Package imui is a small immediate-mode layout engine for character-grid displays.
//
// Callers describe nested horizontal/vertical groups of widgets every frame:
//
//	ui.Begin(imui.V(0, 0), imui.Vertical)
//	ui.Label("header", imui.HighlightPair)
//	ui.BeginLayout(imui.Horizontal)
//	...
//	ui.EndLayout()
//	ui.End()
//
// Widget positions are derived from the nesting alone; no widget tree is retained
// between frames. A single pending key is shared by the widgets and the caller:
// whoever takes it first wins, and a widget that cannot use a key puts it back.
//
// Unbalanced Begin/End calls are programmer errors and panic with *UsageError.
package imui
