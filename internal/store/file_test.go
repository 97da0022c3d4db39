package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"todo-cli/internal/model"
)

func TestFileStore_Load_TwoLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	if err := os.WriteFile(path, []byte("TODO: buy milk\nDONE: pay rent\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got.Todos, []string{"buy milk"}) || !reflect.DeepEqual(got.Dones, []string{"pay rent"}) {
		t.Fatalf("unexpected lists: %+v", got)
	}
}

func TestFileStore_Load_MalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	if err := os.WriteFile(path, []byte("TODO: ok\nnope\nDONE: fine\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewFileStore(path).Load(context.Background())
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError; got %v", err)
	}
	if pe.Line != 2 {
		t.Fatalf("expected line 2; got %d", pe.Line)
	}
	want := path + ":2: ERROR: ill-formed item line"
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
}

func TestFileStore_Load_Missing(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "nope.txt")).Load(context.Background())
	if !IsNotExist(err) {
		t.Fatalf("expected not-exist; got %v", err)
	}
}

func TestFileStore_SaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "todo.txt")
	s := NewFileStore(path)
	in := &model.Lists{
		Todos: []string{"first", "  padded  ", "DONE: looks like a tag"},
		Dones: []string{"finished"},
	}
	if err := s.Save(context.Background(), in); err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	wantFile := "TODO: first\nTODO:   padded  \nTODO: DONE: looks like a tag\nDONE: finished\n"
	if string(b) != wantFile {
		t.Fatalf("unexpected file:\n%s", b)
	}

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip:\n got: %#v\nwant: %#v", got, in)
	}

	ents, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(ents) != 1 {
		t.Fatalf("expected temp files to be cleaned up; got %d entries", len(ents))
	}
}

func TestOpen_PicksBackendByExtension(t *testing.T) {
	tests := map[string]string{
		"todo.txt":     "*store.FileStore",
		"TODO":         "*store.FileStore",
		"items.db":     "*store.SQLiteStore",
		"items.SQLITE": "*store.SQLiteStore",
	}
	for path, want := range tests {
		got := reflect.TypeOf(Open(path)).String()
		if got != want {
			t.Fatalf("%s: got %s want %s", path, got, want)
		}
	}
}
