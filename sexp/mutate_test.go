package sexp

import (
	"strings"
	"testing"
)

// topList returns the sole top-level form of a single-form document,
// which is where every scenario below does its actual indexing; the
// Tree's own root is always one level further out and is never walked
// into directly when the source text has just one top-level form.
func topList(t *testing.T, tr *Tree) Node {
	t.Helper()
	n, err := tr.Root().At(0)
	if err != nil {
		t.Fatalf("Root().At(0): %v", err)
	}
	return n
}

func TestScenarioRemoveMiddleChild(t *testing.T) {
	tr, err := Parse([]byte("(a b c)"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lst := topList(t, tr)
	b, err := lst.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	if err := Remove(b); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := string(Serialize(tr)); got != "(a c)" {
		t.Fatalf("Serialize = %q, want %q", got, "(a c)")
	}
}

func TestScenarioAppendToSiblingsParent(t *testing.T) {
	tr, err := Parse([]byte("(a b)"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lst := topList(t, tr)
	c := tr.NewAtomString("c")
	if err := Append(lst, c); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got := string(Serialize(tr)); got != "(a b c)" {
		t.Fatalf("Serialize = %q, want %q", got, "(a b c)")
	}
}

func TestScenarioMoveNodeToEndOfOwnParent(t *testing.T) {
	tr, err := Parse([]byte("(a b c)"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lst := topList(t, tr)
	a, err := lst.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	parent := a.Parent()
	if err := Append(parent, a); err != nil {
		t.Fatalf("Append (move): %v", err)
	}
	if got := string(Serialize(tr)); got != "(b c a)" {
		t.Fatalf("Serialize = %q, want %q", got, "(b c a)")
	}
}

func TestScenarioExtractInnerList(t *testing.T) {
	tr, err := Parse([]byte("(a (b c) d)"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lst := topList(t, tr)
	inner, err := lst.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	e, err := Extract(inner)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := string(Serialize(e)); got != "(b c)" {
		t.Fatalf("Serialize(extracted) = %q, want %q", got, "(b c)")
	}
	if got := string(Serialize(tr)); got != "(a d)" {
		t.Fatalf("Serialize(source) = %q, want %q", got, "(a d)")
	}
}

func TestScenarioCrossTreeAppendFails(t *testing.T) {
	t1, err := Parse([]byte("(a b)"))
	if err != nil {
		t.Fatalf("Parse t1: %v", err)
	}
	t2, err := Parse([]byte("(c d)"))
	if err != nil {
		t.Fatalf("Parse t2: %v", err)
	}
	list1 := topList(t, t1)
	a, err := list1.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	parent := a.Parent()

	list2 := topList(t, t2)
	c, err := list2.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}

	err = Append(parent, c)
	if err == nil {
		t.Fatal("expected CrossTree error, got nil")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != CrossTree {
		t.Fatalf("err = %v, want CrossTree", err)
	}
	// Failure must leave both trees untouched.
	if got := string(Serialize(t1)); got != "(a b)" {
		t.Fatalf("t1 mutated after failed append: %q", got)
	}
	if got := string(Serialize(t2)); got != "(c d)" {
		t.Fatalf("t2 mutated after failed append: %q", got)
	}
}

func TestAtNegativeIndex(t *testing.T) {
	tr, _ := Parse([]byte("(a b c)"))
	lst := topList(t, tr)
	last, err := lst.At(-1)
	if err != nil {
		t.Fatalf("At(-1): %v", err)
	}
	if last.ValueString() != "c" {
		t.Fatalf("At(-1) = %q, want %q", last.ValueString(), "c")
	}
}

func TestAtOutOfRange(t *testing.T) {
	tr, _ := Parse([]byte("(a b c)"))
	lst := topList(t, tr)
	for _, idx := range []int{3, -4} {
		if _, err := lst.At(idx); err == nil {
			t.Fatalf("At(%d): expected error, got nil", idx)
		} else if e, ok := err.(*Error); !ok || e.Kind != OutOfRange {
			t.Fatalf("At(%d) err = %v, want OutOfRange", idx, err)
		}
	}
}

func TestFindNotFoundSuggestsCloseKey(t *testing.T) {
	tr, _ := Parse([]byte("(player (pos 1 2) (vel 3 4))"))
	player := topList(t, tr)
	_, err := player.Find("poss")
	if err == nil {
		t.Fatal("expected NotFound error, got nil")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != NotFound {
		t.Fatalf("err = %v, want NotFound", err)
	}
	if !strings.Contains(e.Message, `did you mean "pos"`) {
		t.Fatalf("Message = %q, want a did-you-mean hint for %q", e.Message, "pos")
	}
}

func TestRemoveRootFails(t *testing.T) {
	tr, _ := Parse([]byte("a"))
	if err := Remove(tr.Root()); err == nil {
		t.Fatal("expected error removing root, got nil")
	}
}

func TestInsertAfter(t *testing.T) {
	tr, _ := Parse([]byte("(a c)"))
	lst := topList(t, tr)
	a, _ := lst.At(0)
	b := tr.NewAtomString("b")
	if err := InsertAfter(a, b); err != nil {
		t.Fatalf("InsertAfter: %v", err)
	}
	if got := string(Serialize(tr)); got != "(a b c)" {
		t.Fatalf("Serialize = %q, want %q", got, "(a b c)")
	}
}

func TestPrepend(t *testing.T) {
	tr, _ := Parse([]byte("(b c)"))
	lst := topList(t, tr)
	a := tr.NewAtomString("a")
	if err := Prepend(lst, a); err != nil {
		t.Fatalf("Prepend: %v", err)
	}
	if got := string(Serialize(tr)); got != "(a b c)" {
		t.Fatalf("Serialize = %q, want %q", got, "(a b c)")
	}
}

func TestCloneLeavesSourceIntact(t *testing.T) {
	tr, _ := Parse([]byte("(a (b c) d)"))
	lst := topList(t, tr)
	inner, _ := lst.At(1)
	clone := Clone(inner)
	if got := string(Serialize(clone)); got != "(b c)" {
		t.Fatalf("Serialize(clone) = %q, want %q", got, "(b c)")
	}
	if got := string(Serialize(tr)); got != "(a (b c) d)" {
		t.Fatalf("source mutated by Clone: %q", got)
	}
}

func TestCannotAttachNodeUnderItsOwnDescendant(t *testing.T) {
	tr, _ := Parse([]byte("(a (b c))"))
	lst := topList(t, tr)
	inner, _ := lst.At(1)
	if err := Append(inner, lst); err == nil {
		t.Fatal("expected cycle error, got nil")
	}
}
