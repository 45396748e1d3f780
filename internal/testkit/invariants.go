package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"nbcell/internal/ast"
	"nbcell/internal/source"
	"nbcell/internal/walk"
)

// CheckSpanInvariants runs a minimal set of range invariants on a parsed
// program:
// 1) the program range lies within the file's characters
// 2) every node has a non-empty range inside its parent's range
// 3) children of a node appear in source order and do not overlap
//
// Template elements may be empty (`${a}` has two empty quasis).
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	n, err := safecast.Conv[uint32](len(sf.Chars))
	if err != nil {
		return fmt.Errorf("file length overflow: %w", err)
	}
	if prog.Loc.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", prog.Loc.File, sf.ID)
	}
	if prog.Loc.Start > prog.Loc.End || prog.Loc.End > n {
		return fmt.Errorf("program span %v outside of %d characters", prog.Loc, n)
	}
	return checkNode(prog)
}

func checkNode(parent ast.Node) error {
	ps := parent.Span()
	var prev source.Span
	for i, ch := range walk.Children(parent) {
		sp := ch.Span()
		if sp.Start > sp.End || (sp.Empty() && ch.Kind() != ast.KindTemplateElement) {
			return fmt.Errorf("%s has empty or inverted span %v", ch.Kind(), sp)
		}
		if sp.File != ps.File {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", ch.Kind(), sp.File, ps.File)
		}
		if !ps.Contains(sp) {
			return fmt.Errorf("%s span %v is outside %s span %v", ch.Kind(), sp, parent.Kind(), ps)
		}
		if i > 0 && sp.Start < prev.End {
			return fmt.Errorf("%s span %v overlaps previous sibling %v in %s", ch.Kind(), sp, prev, parent.Kind())
		}
		prev = sp
		if err := checkNode(ch); err != nil {
			return err
		}
	}
	return nil
}
