// Package histcache persists a transpile.History between runs so that
// stacks captured from code transpiled earlier can still be mapped back to
// their cells.
package histcache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"nbcell/internal/source"
	"nbcell/internal/transpile"
)

// Current schema version - increment when Snapshot format changes
const schemaVersion uint16 = 1

// ErrSchema is returned when a snapshot was written by an incompatible
// version.
var ErrSchema = errors.New("history snapshot schema mismatch")

// ErrCorrupt is returned when a stored cell does not match its checksum.
var ErrCorrupt = errors.New("history snapshot is corrupt")

// Snapshot is the on-disk form of a History.
type Snapshot struct {
	Schema uint16
	Saved  time.Time
	LastID uint64
	Cells  []Cell
}

// Cell is one transpilation record. Origins has one entry per character of
// Code: the offset of the cell character it came from, or -1 for text the
// transpiler synthesized.
type Cell struct {
	ID      uint64
	Name    string
	Text    string
	Hash    [32]byte // sha256 of Text
	Code    string
	Origins []int32
}

// Store reads and writes snapshots at one path. Thread-safe for concurrent
// access.
type Store struct {
	mu   sync.RWMutex
	path string
}

// Open returns a store for path. An empty path selects DefaultPath.
func Open(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Store{path: path}, nil
}

// DefaultPath is $XDG_CACHE_HOME/nbcell/history.mp, falling back to
// ~/.cache.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "nbcell", "history.mp"), nil
}

// Path returns the snapshot file location.
func (s *Store) Path() string { return s.path }

// Save writes h atomically: the snapshot goes to a temporary file in the
// same directory which then replaces the old one.
func (s *Store) Save(h *transpile.History) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(s.path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = Encode(f, h); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), s.path)
}

// Load adds the records stored at the store's path to h and returns how
// many were loaded. A missing file is not an error.
func (s *Store) Load(h *transpile.History) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()
	n, err := Decode(f, h)
	if err != nil {
		return n, fmt.Errorf("%s: %w", s.path, err)
	}
	return n, nil
}

// Drop removes the snapshot file.
func (s *Store) Drop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Encode writes a snapshot of h to w.
func Encode(w io.Writer, h *transpile.History) error {
	snap := Snapshot{
		Schema: schemaVersion,
		Saved:  time.Now().UTC(),
		LastID: h.LastID(),
	}
	for _, rec := range h.Records() {
		cell, err := fromRecord(rec)
		if err != nil {
			return err
		}
		snap.Cells = append(snap.Cells, cell)
	}
	return msgpack.NewEncoder(w).Encode(&snap)
}

// Decode reads a snapshot from r into h. Ids handed out by h afterwards
// are greater than every stored id.
func Decode(r io.Reader, h *transpile.History) (int, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return 0, err
	}
	if snap.Schema != schemaVersion {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrSchema, snap.Schema, schemaVersion)
	}
	for i, cell := range snap.Cells {
		rec, err := toRecord(cell)
		if err != nil {
			return i, err
		}
		h.Put(rec)
	}
	h.Seed(snap.LastID)
	return len(snap.Cells), nil
}

func fromRecord(rec *transpile.Record) (Cell, error) {
	if rec.Anchor == nil {
		return Cell{}, fmt.Errorf("record %d has no anchor", rec.ID)
	}
	chars := rec.Source.Chars()
	cell := Cell{
		ID:      rec.ID,
		Name:    rec.Name,
		Text:    rec.Anchor.Text(),
		Hash:    sha256.Sum256([]byte(rec.Anchor.Text())),
		Code:    rec.Source.String(),
		Origins: make([]int32, len(chars)),
	}
	for i, c := range chars {
		cell.Origins[i] = -1
		off, ok := rec.Anchor.Offset(c.Origin)
		if !ok {
			continue
		}
		v, err := safecast.Conv[int32](off)
		if err != nil {
			return Cell{}, fmt.Errorf("record %d: %w", rec.ID, err)
		}
		cell.Origins[i] = v
	}
	return cell, nil
}

// toRecord rebuilds the anchor so that every origin points into it again.
func toRecord(cell Cell) (*transpile.Record, error) {
	if sha256.Sum256([]byte(cell.Text)) != cell.Hash {
		return nil, fmt.Errorf("cell %d: %w: text checksum mismatch", cell.ID, ErrCorrupt)
	}
	code := []rune(cell.Code)
	if len(code) != len(cell.Origins) {
		return nil, fmt.Errorf("cell %d: %w: %d origins for %d characters", cell.ID, ErrCorrupt, len(cell.Origins), len(code))
	}
	anchor := source.NewAnchor(cell.Name, cell.Text)
	chars := make([]source.MappedChar, len(code))
	for i, r := range code {
		chars[i].Char = r
		off := int(cell.Origins[i])
		if off < 0 {
			continue
		}
		if off >= anchor.Len() {
			return nil, fmt.Errorf("cell %d: %w: origin %d past end of text", cell.ID, ErrCorrupt, off)
		}
		chars[i].Origin = anchor.At(off).Origin
	}
	return &transpile.Record{
		ID:     cell.ID,
		Name:   cell.Name,
		Source: source.Convert(chars, nil),
		Anchor: anchor,
	}, nil
}
