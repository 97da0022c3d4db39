package store

import (
	"bufio"
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"

	"todo-cli/internal/model"
)

// FileStore keeps one item per line: "TODO: <title>" or "DONE: <title>".
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(_ context.Context) (*model.Lists, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lists := &model.Lists{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		st, title, ok := model.ParseItem(sc.Text())
		if !ok {
			return nil, &ParseError{Path: s.path, Line: line}
		}
		l := lists.Of(st)
		*l = append(*l, title)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	log.Printf("store: loaded %d todo / %d done from %s", len(lists.Todos), len(lists.Dones), s.path)
	return lists, nil
}

func (s *FileStore) Save(_ context.Context, lists *model.Lists) error {
	var buf bytes.Buffer
	for _, t := range lists.Todos {
		buf.WriteString(model.FormatItem(model.StatusTodo, t))
		buf.WriteByte('\n')
	}
	for _, d := range lists.Dones {
		buf.WriteString(model.FormatItem(model.StatusDone, d))
		buf.WriteByte('\n')
	}

	path := filepath.Clean(s.path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := atomicWriteFile(dir, "."+filepath.Base(path)+".*.tmp", path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.Printf("store: saved %d todo / %d done to %s", len(lists.Todos), len(lists.Dones), s.path)
	return nil
}
