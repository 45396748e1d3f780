package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI выполняет rootCmd; все глобальные флаги задаются явно, так как
// cobra сохраняет их значения между вызовами.
func runCLI(t *testing.T, dir, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	base := []string{
		"--config", filepath.Join(dir, "nbcell.toml"),
		"--history", filepath.Join(dir, "history.mp"),
		"--color", "off",
		"--trace-level", "off",
	}
	rootCmd.SetArgs(append(append(args[:1:1], base...), args[1:]...))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func newWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "nbcell.toml"), []byte("[transpile]\nhistory_limit = 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestTranspileStackHistoryFlow(t *testing.T) {
	dir := newWorkdir(t)

	out, stderr, err := runCLI(t, dir, "let a = 1\nthrow new Error('x')", "transpile", "--name", "cell", "--format", "code")
	if err != nil {
		t.Fatalf("transpile: %v\n%s", err, stderr)
	}
	if !strings.HasPrefix(out, "(async function __transpiled_top_level_1__(__global, __import, console) {\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "//# sourceURL=__transpiled_source_1__/cell") {
		t.Fatalf("missing sourceURL:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "history.mp")); err != nil {
		t.Fatalf("history not saved: %v", err)
	}

	stack := strings.Join([]string{
		"Error: x",
		"    at __transpiled_top_level_1__ (__transpiled_source_1__/cell:3:7)",
		"    at run (host.js:10:3)",
	}, "\n")
	out, stderr, err = runCLI(t, dir, stack+"\n", "stack")
	if err != nil {
		t.Fatalf("stack: %v\n%s", err, stderr)
	}
	if want := "Error: x\n    at <top level> (cell:2:7)\n"; out != want {
		t.Fatalf("stack got %q, want %q", out, want)
	}

	out, _, err = runCLI(t, dir, "", "history", "list", "--format", "json")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var entries []historyEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("history json: %v\n%s", err, out)
	}
	if len(entries) != 1 || entries[0].ID != 1 || entries[0].Name != "cell" || entries[0].Lines != 2 {
		t.Fatalf("entries = %+v", entries)
	}

	// следующий запуск продолжает нумерацию
	out, _, err = runCLI(t, dir, "1", "transpile", "--name", "next", "--format", "json")
	if err != nil {
		t.Fatalf("second transpile: %v", err)
	}
	var cells []cellOutput
	if err := json.Unmarshal([]byte(out), &cells); err != nil {
		t.Fatalf("cells json: %v\n%s", err, out)
	}
	if len(cells) != 1 || cells[0].ID != 2 || cells[0].Name != "next" {
		t.Fatalf("cells = %+v", cells)
	}

	if _, _, err := runCLI(t, dir, "", "history", "clear"); err != nil {
		t.Fatalf("history clear: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "history.mp")); !os.IsNotExist(err) {
		t.Fatalf("history file still present: %v", err)
	}
}

func TestTranspileReportsSyntaxError(t *testing.T) {
	dir := newWorkdir(t)
	cell := filepath.Join(dir, "bad.js")
	if err := os.WriteFile(cell, []byte("let x = ;\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runCLI(t, dir, "", "transpile", "--name", "", "--format", "code", cell)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "1 of 1 cell(s) failed") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(stderr, "bad.js:1:9: ERROR") {
		t.Fatalf("stderr:\n%s", stderr)
	}
}

func TestVersionJSON(t *testing.T) {
	dir := newWorkdir(t)
	out, _, err := runCLI(t, dir, "", "version", "--format", "json", "--full")
	if err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("version json: %v\n%s", err, out)
	}
	if payload.Tool != "nbcell" || payload.GitCommit == "" {
		t.Fatalf("payload = %+v", payload)
	}
}
