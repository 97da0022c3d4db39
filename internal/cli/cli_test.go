package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// isolate keeps tests away from the user's config and environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("TODO_CONFIG_DIR", t.TempDir())
	for _, k := range []string{"TODO_BACKEND", "TODO_THEME", "TODO_FPS", "TODO_FORMAT", "TODO_DEBUG_LOG", "NO_COLOR"} {
		t.Setenv(k, "")
	}
}

func mustEnvelope(t *testing.T, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: todo %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", args, err, stderr, stdout)
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s", err, stdout)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected data key; got %v", env)
	}
	return env
}

func titles(t *testing.T, env map[string]any, key string) []string {
	t.Helper()
	data := env["data"].(map[string]any)
	raw, ok := data[key].([]any)
	if !ok {
		t.Fatalf("expected %s to be a list; got %T", key, data[key])
	}
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		out = append(out, it.(map[string]any)["title"].(string))
	}
	return out
}

func TestRoot_MissingFilePath(t *testing.T) {
	isolate(t)

	_, stderr, err := runCLI(t, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsReported(err) {
		t.Fatalf("expected error to be reported already")
	}
	want := "Usage: todo <file-path>\nERROR: file path is not provided\n"
	if string(stderr) != want {
		t.Fatalf("stderr: got %q want %q", stderr, want)
	}
}

func TestRoot_IllFormedFileIsFatal(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "todo.txt")
	if err := os.WriteFile(path, []byte("TODO: a\nTODO:b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runCLI(t, []string{path})
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if got := strings.TrimSpace(string(stderr)); got != path+":2: ERROR: ill-formed item line" {
		t.Fatalf("unexpected stderr %q", got)
	}
}

func TestRoot_RejectsUnknownBackendBeforeStarting(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "todo.txt")

	_, stderr, err := runCLI(t, []string{"--backend", "curses", path})
	if err == nil || !strings.Contains(string(stderr), "unknown backend") {
		t.Fatalf("expected unknown backend error; err=%v stderr=%q", err, stderr)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("nothing should be saved when the UI never started")
	}
}

func TestItems_AddDoneUndo(t *testing.T) {
	for _, name := range []string{"todo.txt", "todo.db"} {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), name)

			env := mustEnvelope(t, "list", path)
			if len(titles(t, env, "todos")) != 0 || len(titles(t, env, "dones")) != 0 {
				t.Fatalf("expected empty lists for a missing file; got %v", env)
			}

			mustEnvelope(t, "add", path, "buy", "milk")
			mustEnvelope(t, "add", path, "write report")
			added := mustEnvelope(t, "add", path, "call plumber")
			if idx := added["data"].(map[string]any)["index"].(float64); idx != 2 {
				t.Fatalf("expected appended index 2; got %v", idx)
			}

			moved := mustEnvelope(t, "done", path, "1")
			if got := moved["data"].(map[string]any); got["status"] != "done" || got["title"] != "write report" {
				t.Fatalf("unexpected done result %v", got)
			}
			mustEnvelope(t, "done", path, "0")
			mustEnvelope(t, "undo", path, "1")

			env = mustEnvelope(t, "list", path)
			if got := strings.Join(titles(t, env, "todos"), ","); got != "call plumber,buy milk" {
				t.Fatalf("todos: %q", got)
			}
			if got := strings.Join(titles(t, env, "dones"), ","); got != "write report" {
				t.Fatalf("dones: %q", got)
			}
			if meta := env["meta"].(map[string]any); meta["path"] != path {
				t.Fatalf("expected meta.path; got %v", meta)
			}
		})
	}
}

func TestItems_FileFormatOnDisk(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "todo.txt")
	mustEnvelope(t, "add", path, "a")
	mustEnvelope(t, "add", path, "b")
	mustEnvelope(t, "done", path, "0")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "TODO: b\nDONE: a\n" {
		t.Fatalf("unexpected file contents %q", b)
	}
}

func TestItems_Errors(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "todo.txt")
	mustEnvelope(t, "add", path, "only")

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"done", path, "5"}, "TODO item not found: 5"},
		{[]string{"undo", path, "0"}, "DONE item not found: 0"},
		{[]string{"done", path, "x"}, `invalid index: "x"`},
		{[]string{"add", path, " "}, "invalid title"},
	}
	for _, tc := range cases {
		_, stderr, err := runCLI(t, tc.args)
		if err == nil || !strings.Contains(string(stderr), tc.want) {
			t.Fatalf("todo %v: expected %q; err=%v stderr=%q", tc.args, tc.want, err, stderr)
		}
	}
}

func TestItems_EDNOutput(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "todo.txt")
	mustEnvelope(t, "add", path, "a")

	stdout, stderr, err := runCLI(t, []string{"--format", "edn", "list", path})
	if err != nil {
		t.Fatalf("list: %v\n%s", err, stderr)
	}
	want := `{:data {:dones [] :todos [{:index 0 :status "todo" :title "a"}]} :meta {:path ` + `"` + path + `"` + `}}` + "\n"
	if string(stdout) != want {
		t.Fatalf("got  %q\nwant %q", stdout, want)
	}
}

func TestDocs(t *testing.T) {
	isolate(t)

	env := mustEnvelope(t, "docs")
	topics := env["data"].(map[string]any)["topics"].([]any)
	if len(topics) != 3 {
		t.Fatalf("unexpected topics %v", topics)
	}

	stdout, _, err := runCLI(t, []string{"docs", "file-format", "--raw"})
	if err != nil || !strings.HasPrefix(string(stdout), "# File format") {
		t.Fatalf("raw docs: err=%v out=%q", err, stdout)
	}

	t.Setenv("NO_COLOR", "1")
	stdout, _, err = runCLI(t, []string{"docs", "keys"})
	if err != nil || !strings.Contains(string(stdout), "Moving around") {
		t.Fatalf("rendered docs: err=%v out=%q", err, stdout)
	}

	if _, stderr, err := runCLI(t, []string{"docs", "nope"}); err == nil || !strings.Contains(string(stderr), "unknown docs topic") {
		t.Fatalf("expected unknown topic error; stderr=%q", stderr)
	}
}

func TestConfig(t *testing.T) {
	isolate(t)

	env := mustEnvelope(t, "config")
	if got := env["data"].(map[string]any)["backend"]; got != "tea" {
		t.Fatalf("expected default backend; got %v", got)
	}

	mustEnvelope(t, "config", "set", "backend", "tcell")
	env = mustEnvelope(t, "config")
	if got := env["data"].(map[string]any)["backend"]; got != "tcell" {
		t.Fatalf("expected saved backend; got %v", got)
	}

	env = mustEnvelope(t, "--backend", "tea", "--theme", "light", "config")
	data := env["data"].(map[string]any)
	if data["backend"] != "tea" || data["theme"] != "light" {
		t.Fatalf("expected flags to override; got %v", data)
	}

	if _, stderr, err := runCLI(t, []string{"config", "set", "colour", "red"}); err == nil || !strings.Contains(string(stderr), "unknown config key") {
		t.Fatalf("expected unknown key error; stderr=%q", stderr)
	}
}
