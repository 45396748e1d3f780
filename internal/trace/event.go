package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1 // span start
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd // span end
	// KindPoint represents an instant event.
	KindPoint // instant event
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity level of the event.
// Lower values are emitted at lower trace levels (see Level.ShouldEmit).
type Scope uint8

const (
	// ScopeDriver represents CLI-level operations over many cells.
	ScopeDriver Scope = iota + 1 // top-level driver operations (highest level)
	// ScopePass represents rewrite passes (wrap, imports, scope).
	ScopePass
	// ScopeCell represents the processing of one cell.
	ScopeCell
	ScopeNode // single node rewrites (most detailed)
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeCell:
		return "cell"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // global sequence number (monotonic)
	Kind     Kind              // event kind
	Scope    Scope             // granularity level
	SpanID   uint64            // unique span identifier
	ParentID uint64            // parent span (0 if root)
	GID      uint64            // goroutine ID (for concurrent spans)
	Name     string            // e.g., "imports", "scope", "cell:3"
	Detail   string            // optional detail message
	Extra    map[string]string // extensible key-value pairs
	Error    bool              // emitted regardless of level
}
