package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"todo-cli/internal/model"
)

// Store persists both item lists.
type Store interface {
	// Load returns an error matching os.ErrNotExist when nothing has been saved yet.
	Load(ctx context.Context) (*model.Lists, error)
	Save(ctx context.Context, lists *model.Lists) error
	Path() string
}

// ParseError reports a stored item that isn't a well-formed TODO/DONE entry.
type ParseError struct {
	Path string
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: ERROR: ill-formed item line", e.Path, e.Line)
}

// Open picks a backend from the path's extension: SQLite databases for
// .db/.sqlite/.sqlite3, the line-oriented text format otherwise.
func Open(path string) Store {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return &SQLiteStore{path: path}
	default:
		return &FileStore{path: path}
	}
}

// IsNotExist reports whether err means the store has never been saved.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
