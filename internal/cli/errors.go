package cli

import (
	"errors"
	"fmt"
)

var errNoFilePath = errors.New("ERROR: file path is not provided")

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

// reportedError wraps an error that has already been printed to stderr.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by the command that
// returned it.
func IsReported(err error) bool {
	var re reportedError
	return errors.As(err, &re)
}
