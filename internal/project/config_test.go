package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[transpile]
global = "G"
history_limit = 50

[history]
file = "cache/history.mp"

[trace]
level = "detail"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	tc := cfg.Transpile
	if tc.GlobalVar != "G" || tc.ImportFn != "__import" || tc.ConsoleVar != "console" || tc.HistoryLimit != 50 {
		t.Errorf("transpile = %+v", tc)
	}
	if tc.TopLevelLabel != "<top level>" {
		t.Errorf("label default lost: %q", tc.TopLevelLabel)
	}
	if want := filepath.Join(dir, "cache", "history.mp"); cfg.History.File != want {
		t.Errorf("history file = %q, want %q", cfg.History.File, want)
	}
	if cfg.Trace.Level != "detail" || cfg.Path != path {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"unknown key", "[transpile]\nglobals = \"x\"\n", ErrUnknownKey},
		{"bad identifier", "[transpile]\nimport = \"my-import\"\n", nil},
		{"duplicate names", "[transpile]\nglobal = \"x\"\nimport = \"x\"\n", nil},
		{"syntax", "[transpile\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[transpile]\nconsole = \"out\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Transpile.ConsoleVar != "out" {
		t.Errorf("console = %q", cfg.Transpile.ConsoleVar)
	}
	got, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: %v %v", ok, err)
	}
	if want, _ := filepath.EvalSymlinks(root); got != root && got != want {
		t.Errorf("root = %q, want %q", got, root)
	}
}

func TestDiscoverWithoutConfig(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	// вне проекта можно наткнуться на чужой nbcell.toml выше TempDir
	if cfg.Path == "" && cfg.Transpile != Default().Transpile {
		t.Errorf("defaults expected, got %+v", cfg)
	}
}
