package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		CPU:   filepath.Join(dir, "cpu.pprof"),
		Mem:   filepath.Join(dir, "mem.pprof"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	if !opts.Enabled() {
		t.Fatal("options should be enabled")
	}

	s, err := Start(opts)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	sum := 0
	for i := range 10000 {
		sum += i
	}
	_ = sum
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}

	for _, p := range []string{opts.CPU, opts.Mem, opts.Trace} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", filepath.Base(p))
		}
	}
}

func TestStartBadPath(t *testing.T) {
	dir := t.TempDir()
	_, err := Start(Options{Trace: filepath.Join(dir, "missing", "trace.out")})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	// CPU profiling must be free again
	s, err := Start(Options{CPU: filepath.Join(dir, "cpu.pprof")})
	if err != nil {
		t.Fatalf("Start after failure: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestNilSessionStop(t *testing.T) {
	var s *Session
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
}
