package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"nbcell/internal/transpile"
)

// Config is the contents of nbcell.toml.
type Config struct {
	Transpile transpile.Config `toml:"transpile"`
	History   HistoryConfig    `toml:"history"`
	Trace     TraceConfig      `toml:"trace"`

	// Path: файл, из которого загружен конфиг; пусто для значений по умолчанию.
	Path string `toml:"-"`
}

// HistoryConfig describes where transpiled cells are kept between runs.
type HistoryConfig struct {
	// File is the snapshot path; relative paths are resolved against the
	// directory of nbcell.toml. Empty means no persistence.
	File string `toml:"file"`
}

// TraceConfig holds defaults for the --trace flags.
type TraceConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ErrUnknownKey reports a key nbcell.toml does not define.
var ErrUnknownKey = errors.New("unknown key")

// Default returns the configuration used when no nbcell.toml is found.
func Default() Config {
	return Config{Transpile: transpile.DefaultConfig()}
}

// LoadConfig parses nbcell.toml at path. Keys absent from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Transpile.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Path = path
	if file := strings.TrimSpace(cfg.History.File); file != "" && !filepath.IsAbs(file) {
		cfg.History.File = filepath.Join(filepath.Dir(path), file)
	}
	return cfg, nil
}

// Discover finds nbcell.toml above startDir and loads it; without one it
// returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadConfig(path)
}
