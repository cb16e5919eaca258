package sexp

import (
	"github.com/arbortext/sexp/internal/arena"
	"github.com/arbortext/sexp/internal/intern"
)

// Node is a lightweight handle into one node of a Tree. Two Nodes refer
// to the same underlying node if and only if they share both a Tree
// pointer and a handle; Node is intentionally compared by identity, not
// by structural content — use Equal for that comparison and Serialize
// to compare by content.
type Node struct {
	tree *Tree
	h    arena.Handle
}

// IsZero reports whether n is the zero Node value, i.e. not associated
// with any Tree. Parent, Next, Prev and Last return it when there is no
// such node, and failing accessors return it alongside their error.
func (n Node) IsZero() bool {
	return n.tree == nil
}

// Tree returns the Tree that owns n.
func (n Node) Tree() *Tree {
	return n.tree
}

// Equal reports whether n and other refer to the same node of the same
// Tree.
func (n Node) Equal(other Node) bool {
	return n.tree == other.tree && n.h == other.h
}

// IsAtom reports whether n is an Atom node.
func (n Node) IsAtom() bool {
	return n.tree.arena.Node(n.h).Kind == arena.Atom
}

// IsList reports whether n is a List node.
func (n Node) IsList() bool {
	return n.tree.arena.Node(n.h).Kind == arena.List
}

// Value returns the byte content of an Atom node. It panics with a
// TypeMismatch-carrying value if n is not an Atom; callers that are
// unsure of n's kind should check IsAtom first.
func (n Node) Value() []byte {
	rec := n.tree.arena.Node(n.h)
	if rec.Kind != arena.List {
		return n.tree.atoms.Lookup(intern.Handle(rec.Value))
	}
	panic(newAPIError(TypeMismatch, "Value called on a List node"))
}

// ValueString is a convenience wrapper around Value for callers that
// want a string rather than a byte slice.
func (n Node) ValueString() string {
	return string(n.Value())
}

// SetValue overwrites an Atom node's content in place. It returns a
// TypeMismatch error if n is not an Atom. The node's identity (handle)
// is unchanged; only the interned value it points at is replaced.
func (n Node) SetValue(value []byte) error {
	rec := n.tree.arena.Node(n.h)
	if rec.Kind != arena.List {
		rec.Value = int32(n.tree.atoms.Intern(value))
		return nil
	}
	return newAPIError(TypeMismatch, "SetValue called on a List node")
}

// Len returns the number of children of a List node, or 0 for an Atom.
func (n Node) Len() int {
	rec := n.tree.arena.Node(n.h)
	if rec.Kind != arena.List {
		return 0
	}
	return int(rec.Len)
}

// Parent returns n's parent node. Parent is the zero Node if n is the
// Tree's root, which has no parent.
func (n Node) Parent() Node {
	rec := n.tree.arena.Node(n.h)
	if rec.Parent == arena.None {
		return Node{}
	}
	return Node{tree: n.tree, h: rec.Parent}
}

// Next returns n's following sibling, or the zero Node if n is the last
// child of its parent (or has no parent).
func (n Node) Next() Node {
	rec := n.tree.arena.Node(n.h)
	if rec.Next == arena.None {
		return Node{}
	}
	return Node{tree: n.tree, h: rec.Next}
}

// Prev returns n's preceding sibling, or the zero Node if n is the first
// child of its parent (or has no parent).
func (n Node) Prev() Node {
	rec := n.tree.arena.Node(n.h)
	if rec.Prev == arena.None {
		return Node{}
	}
	return Node{tree: n.tree, h: rec.Prev}
}

// Head returns n's first child. It returns an OutOfRange error if n is
// not a List, or is an empty List — there is no first child to return,
// the same failure an out-of-range At(0) would report.
func (n Node) Head() (Node, error) {
	rec := n.tree.arena.Node(n.h)
	if rec.Kind != arena.List || rec.First == arena.None {
		length := 0
		if rec.Kind == arena.List {
			length = int(rec.Len)
		}
		return Node{}, newAPIError(OutOfRange, "head called on list of length %d", length)
	}
	return Node{tree: n.tree, h: rec.First}, nil
}

// Last returns n's last child, or the zero Node if n is an Atom or an
// empty List.
func (n Node) Last() Node {
	rec := n.tree.arena.Node(n.h)
	if rec.Kind != arena.List || rec.Last == arena.None {
		return Node{}
	}
	return Node{tree: n.tree, h: rec.Last}
}

// Children returns a lazy, single-pass iterator over n's direct
// children, in order. It is safe to break out of the range early; it is
// not safe to mutate n's child chain while iterating and continue
// iterating afterward — take a snapshot with At first if that's needed.
func (n Node) Children() func(func(Node) bool) {
	return func(yield func(Node) bool) {
		rec := n.tree.arena.Node(n.h)
		if rec.Kind != arena.List {
			return
		}
		for h := rec.First; h != arena.None; {
			cur := n.tree.arena.Node(h)
			next := cur.Next
			if !yield((Node{tree: n.tree, h: h})) {
				return
			}
			h = next
		}
	}
}

// Tail returns a lazy, single-pass, non-restartable iterator over n's
// children after the first. It never errors: an Atom, an empty List, or
// a single-child List all simply yield nothing.
func (n Node) Tail() func(func(Node) bool) {
	return func(yield func(Node) bool) {
		rec := n.tree.arena.Node(n.h)
		if rec.Kind != arena.List || rec.First == arena.None {
			return
		}
		for h := n.tree.arena.Node(rec.First).Next; h != arena.None; {
			cur := n.tree.arena.Node(h)
			next := cur.Next
			if !yield((Node{tree: n.tree, h: h})) {
				return
			}
			h = next
		}
	}
}

// At returns the i'th child of a List node (0-based). It returns a
// TypeMismatch error if n is not a List, and an OutOfRange error if i is
// outside [-Len, Len). Negative i counts from the end, per the
// convention used by the original reference implementation: -1 is the
// last child.
func (n Node) At(i int) (Node, error) {
	rec := n.tree.arena.Node(n.h)
	if rec.Kind != arena.List {
		return Node{}, newAPIError(TypeMismatch, "At called on an Atom node")
	}
	length := int(rec.Len)
	idx := i
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return Node{}, newAPIError(OutOfRange, "index %d out of range for list of length %d", i, length)
	}

	h := rec.First
	for j := 0; j < idx; j++ {
		h = n.tree.arena.Node(h).Next
	}
	return Node{tree: n.tree, h: h}, nil
}

// Find returns the first child that is a non-empty List whose first
// element is an Atom equal to key — the "(key value ...)" keyed-lookup
// convention used throughout S-expression configs. It returns a
// NotFound error, with a did-you-mean suggestion among sibling keys
// when one is close, if no such child exists.
func (n Node) Find(key string) (Node, error) {
	rec := n.tree.arena.Node(n.h)
	if rec.Kind != arena.List {
		return Node{}, newAPIError(TypeMismatch, "Find called on an Atom node")
	}

	var candidates []string
	for h := rec.First; h != arena.None; h = n.tree.arena.Node(h).Next {
		child := n.tree.arena.Node(h)
		if child.Kind != arena.List || child.Len == 0 {
			continue
		}
		first := n.tree.arena.Node(child.First)
		if first.Kind == arena.List {
			continue
		}
		k := string(n.tree.atoms.Lookup(intern.Handle(first.Value)))
		if k == key {
			return Node{tree: n.tree, h: h}, nil
		}
		candidates = append(candidates, k)
	}

	return Node{}, notFoundWithSuggestion(key, candidates)
}
