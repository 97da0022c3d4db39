package model

import (
	"fmt"
	"strings"
)

type Status int

const (
	StatusTodo Status = iota
	StatusDone
)

func (s Status) String() string {
	if s == StatusDone {
		return "DONE"
	}
	return "TODO"
}

// Prefix is the line tag used by the flat-file format.
func (s Status) Prefix() string { return s.String() + ": " }

func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusTodo
	}
	return StatusDone
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	st, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// ParseStatus accepts "todo"/"done" in any case.
func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "todo":
		return StatusTodo, nil
	case "done":
		return StatusDone, nil
	default:
		return 0, fmt.Errorf("invalid status: %q (expected todo|done)", v)
	}
}

// Item is one entry as reported by the CLI.
type Item struct {
	Status Status `json:"status"`
	Index  int    `json:"index"`
	Title  string `json:"title"`
}

// Lists holds both item lists in display order.
type Lists struct {
	Todos []string
	Dones []string
}

func (l *Lists) Of(s Status) *[]string {
	if s == StatusDone {
		return &l.Dones
	}
	return &l.Todos
}

// Items flattens both lists, TODOs first.
func (l *Lists) Items() []Item {
	out := make([]Item, 0, len(l.Todos)+len(l.Dones))
	for i, t := range l.Todos {
		out = append(out, Item{Status: StatusTodo, Index: i, Title: t})
	}
	for i, d := range l.Dones {
		out = append(out, Item{Status: StatusDone, Index: i, Title: d})
	}
	return out
}

// ParseItem splits a persisted line into its status and title. The title is
// kept verbatim.
func ParseItem(line string) (Status, string, bool) {
	for _, s := range []Status{StatusTodo, StatusDone} {
		if title, ok := strings.CutPrefix(line, s.Prefix()); ok {
			return s, title, true
		}
	}
	return 0, "", false
}

// FormatItem is the inverse of ParseItem.
func FormatItem(s Status, title string) string {
	return s.Prefix() + title
}
