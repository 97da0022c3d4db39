package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"todo-cli/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps items in a single table ordered by (status, pos).
type SQLiteStore struct {
	path string
}

func NewSQLiteStore(path string) *SQLiteStore { return &SQLiteStore{path: path} }

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(filepath.Clean(s.path)), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, err
	}
	// WAL lets `todo list` read while the TUI holds the file open.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS items (
		status TEXT NOT NULL,
		pos INTEGER NOT NULL,
		title TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*model.Lists, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, err
	}
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT rowid, status, title FROM items ORDER BY pos ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := &model.Lists{}
	for rows.Next() {
		var (
			rowid  int
			status string
			title  string
		)
		if err := rows.Scan(&rowid, &status, &title); err != nil {
			return nil, err
		}
		st, err := model.ParseStatus(status)
		if err != nil {
			return nil, &ParseError{Path: s.path, Line: rowid}
		}
		l := lists.Of(st)
		*l = append(*l, title)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Printf("store: loaded %d todo / %d done from sqlite %s", len(lists.Todos), len(lists.Dones), s.path)
	return lists, nil
}

func (s *SQLiteStore) Save(ctx context.Context, lists *model.Lists) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items(status, pos, title) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	pos := 0
	for _, st := range []model.Status{model.StatusTodo, model.StatusDone} {
		for _, title := range *lists.Of(st) {
			label, _ := st.MarshalText()
			if _, err := stmt.ExecContext(ctx, string(label), pos, title); err != nil {
				return fmt.Errorf("insert item %d: %w", pos, err)
			}
			pos++
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("store: saved %d todo / %d done to sqlite %s", len(lists.Todos), len(lists.Dones), s.path)
	return nil
}
