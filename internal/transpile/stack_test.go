package transpile

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

type jsError struct {
	msg, stack string
}

func (e *jsError) Error() string { return e.msg }
func (e *jsError) Stack() string { return e.stack }

func TestFormatStackTruncatesAndRemaps(t *testing.T) {
	tr := New(DefaultConfig())
	res, err := tr.Transpile("let a = 1\nthrow new Error('x')", "cell")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(res.Code, "\n")
	if lines[2] != "throw new Error('x')" {
		t.Fatalf("unexpected layout:\n%s", res.Code)
	}

	stack := strings.Join([]string{
		"Error: x",
		"    at __transpiled_top_level_1__ (__transpiled_source_1__/cell:3:7)",
		"    at run (host.js:10:3)",
		"    at main (host.js:20:1)",
	}, "\n")
	want := "Error: x\n    at <top level> (cell:2:7)"
	if got := tr.FormatErrorStack(&jsError{msg: "x", stack: stack}); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestFormatStackOddCellNames(t *testing.T) {
	tests := []struct {
		name, url string
	}{
		{`C:\work\a.js`, `C__work\a.js`},
		{"cell_(1).js", "cell__1_.js"},
		{"my cell", "my_cell"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(DefaultConfig())
			res, err := tr.Transpile("let a = 1\nthrow new Error('x')", tt.name)
			if err != nil {
				t.Fatal(err)
			}
			ref := fmt.Sprintf("__transpiled_source_1__/%s", tt.url)
			if !strings.HasSuffix(res.Code, "//# sourceURL="+ref) {
				t.Fatalf("case %d: sourceURL not sanitized:\n%s", i, res.Code)
			}
			frame := "    at __transpiled_top_level_1__ (" + ref + ":3:7)"
			want := "    at <top level> (" + tt.name + ":2:7)"
			if got := tr.FormatStack(frame); got != want {
				t.Fatalf("got  %q\nwant %q", got, want)
			}
		})
	}
}

func TestFormatStackLineOnly(t *testing.T) {
	tr := New(DefaultConfig())
	if _, err := tr.Transpile("  go()", "c"); err != nil {
		t.Fatal(err)
	}
	// без колонки берётся первая исходная позиция строки
	if got := tr.FormatStack("at __transpiled_source_1__/c:2"); got != "at c:1:1" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatStackUnresolvable(t *testing.T) {
	tr := New(DefaultConfig())
	if _, err := tr.Transpile("x", "c"); err != nil {
		t.Fatal(err)
	}
	cases := []string{
		"at f (__transpiled_source_99__/gone:1:1)", // unknown id
		"at f (__transpiled_source_1__/c:1:5)",     // header is synthetic
		"at f (__transpiled_source_1__/c:40:1)",    // past the end
		"at f (__transpiled_source_1__/c)",         // no position
		"at g (other.js:1:1)",
	}
	for _, in := range cases {
		if got := tr.FormatStack(in); got != in {
			t.Errorf("FormatStack(%q) = %q, want it unchanged", in, got)
		}
	}
}

func TestFormatStackWithoutWrapperFrame(t *testing.T) {
	tr := New(DefaultConfig())
	in := "Error\n    at a (x.js:1:1)\n    at b (y.js:2:2)"
	if got := tr.FormatStack(in); got != in {
		t.Fatalf("got %q", got)
	}
}

func TestFormatStackCustomLabel(t *testing.T) {
	tr := New(Config{TopLevelLabel: "<cell>"})
	if got := tr.FormatStack("at __transpiled_top_level_7__ (x)\nat host"); got != "at <cell> (x)" {
		t.Fatalf("got %q", got)
	}
}

func TestConcurrentTranspile(t *testing.T) {
	tr := New(DefaultConfig())
	const n = 32
	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := tr.Transpile(fmt.Sprintf("var v%d = %d\nboom()", i, i), fmt.Sprintf("c%d", i))
			if err != nil {
				t.Error(err)
				return
			}
			ids[i] = res.ID
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for i, id := range ids {
		if id == 0 || seen[id] {
			t.Fatalf("id %d reused or missing", id)
		}
		seen[id] = true
		ref := fmt.Sprintf("__transpiled_source_%d__/c%d:3:1", id, i)
		want := fmt.Sprintf("c%d:2:1", i)
		if got := tr.FormatStack(ref); got != want {
			t.Errorf("FormatStack(%q) = %q, want %q", ref, got, want)
		}
	}
	if tr.History().Len() != n {
		t.Fatalf("history has %d records", tr.History().Len())
	}
}
