package transpile

import (
	"errors"
	"fmt"
)

// Config controls the names the generated code uses. The zero value is
// not valid; start from DefaultConfig.
type Config struct {
	// GlobalVar is the parameter that receives the global object.
	GlobalVar string `toml:"global"`
	// ImportFn is the parameter that receives the module loader.
	ImportFn string `toml:"import"`
	// ConsoleVar is the parameter that receives the console.
	ConsoleVar string `toml:"console"`
	// HistoryLimit caps the number of remembered cells; 0 keeps all.
	HistoryLimit int `toml:"history_limit"`
	// TopLevelLabel replaces the wrapper's name in formatted stacks.
	TopLevelLabel string `toml:"top_level_label"`
}

// DefaultConfig returns the configuration used by the package-level
// functions.
func DefaultConfig() Config {
	return Config{
		GlobalVar:     "__global",
		ImportFn:      "__import",
		ConsoleVar:    "console",
		TopLevelLabel: "<top level>",
	}
}

var errBadName = errors.New("not a JavaScript identifier")

// Validate checks that the configured names can be used as parameters.
func (c Config) Validate() error {
	names := []struct{ key, val string }{
		{"global", c.GlobalVar},
		{"import", c.ImportFn},
		{"console", c.ConsoleVar},
	}
	seen := make(map[string]string, len(names))
	for _, n := range names {
		if !isIdentifier(n.val) {
			return fmt.Errorf("transpile config %s = %q: %w", n.key, n.val, errBadName)
		}
		if prev, ok := seen[n.val]; ok {
			return fmt.Errorf("transpile config: %s and %s both use %q", prev, n.key, n.val)
		}
		seen[n.val] = n.key
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("transpile config: history_limit must not be negative, got %d", c.HistoryLimit)
	}
	return nil
}

// withDefaults fills empty fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.GlobalVar == "" {
		c.GlobalVar = d.GlobalVar
	}
	if c.ImportFn == "" {
		c.ImportFn = d.ImportFn
	}
	if c.ConsoleVar == "" {
		c.ConsoleVar = d.ConsoleVar
	}
	if c.TopLevelLabel == "" {
		c.TopLevelLabel = d.TopLevelLabel
	}
	return c
}

// isIdentifier accepts ASCII identifiers only; that is all a parameter
// name in the header needs.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
