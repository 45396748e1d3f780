package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase records the duration of one step of a transpilation.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Count int // сколько раз фаза прошла (после Merge)
	Note  string
}

// Timer tracks the execution time of named phases. Not safe for concurrent
// use; each transpile owns its own Timer and the driver merges them.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now(), Count: 1})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Phases returns a copy of the recorded phases.
func (t *Timer) Phases() []Phase {
	if t == nil {
		return nil
	}
	return append([]Phase(nil), t.phases...)
}

// Total is the sum of all phase durations.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	if t == nil {
		return total
	}
	for _, p := range t.phases {
		total += p.Dur
	}
	return total
}

// Merge folds other into t: phases with the same name are summed, new names
// are appended in the order they first appear. Notes are dropped.
func (t *Timer) Merge(other *Timer) {
	if other == nil {
		return
	}
	for _, op := range other.phases {
		found := false
		for i := range t.phases {
			if t.phases[i].Name == op.Name {
				t.phases[i].Dur += op.Dur
				t.phases[i].Count += op.Count
				t.phases[i].Note = ""
				found = true
				break
			}
		}
		if !found {
			op.Note = ""
			t.phases = append(t.phases, op)
		}
	}
}

// Summary returns a human-readable table of the tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-12s %7.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			fmt.Fprintf(&sb, "  x%d", p.Count)
		}
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "  %-12s %7.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport is the serialisable form of a phase.
type PhaseReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Count      int     `json:"count,omitempty" msgpack:"count,omitempty"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms"`
	Phases  []PhaseReport `json:"phases" msgpack:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if t == nil || len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	for i, phase := range t.phases {
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Count:      phase.Count,
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(t.Total())
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
