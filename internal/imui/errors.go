package imui

import "fmt"

// UsageError reports a frame structured incorrectly by the caller (unbalanced
// Begin/End, widgets outside any layout). It is raised with panic.
type UsageError struct {
	Op  string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("imui: %s: %s", e.Op, e.Msg)
}

func usage(op, msg string) {
	panic(&UsageError{Op: op, Msg: msg})
}
