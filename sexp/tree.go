package sexp

import (
	"github.com/google/uuid"

	"github.com/arbortext/sexp/internal/arena"
	"github.com/arbortext/sexp/internal/intern"
)

// Tree owns the storage for one parsed or constructed S-expression
// document: one Arena of nodes, one intern Table of atom bytes, and a
// single root node of List kind whose children are the document's
// top-level forms.
//
// A Tree is not safe for concurrent use. Callers that want to mutate a
// Tree from multiple goroutines must serialize access themselves; see
// SPEC_FULL.md's concurrency section for the rationale.
type Tree struct {
	id    uuid.UUID
	arena *arena.Arena
	atoms *intern.Table
	root  arena.Handle
}

// NewTree returns an empty Tree: a root List node with no children.
func NewTree() *Tree {
	t := &Tree{
		id:    uuid.New(),
		arena: arena.New(),
		atoms: intern.New(),
	}
	t.root = t.arena.Allocate(arena.List)
	return t
}

// ID returns a process-unique identifier for this Tree. It has no
// bearing on equality or content; it exists so logs and metrics can
// correlate operations against one Tree instance across a request's
// lifetime.
func (t *Tree) ID() uuid.UUID {
	return t.id
}

// Root returns the Tree's implicit outer List node. Root is always
// present and always of List kind. Append, Prepend, InsertAfter, Remove
// and Extract refuse to move or remove it. Clone does not refuse it:
// Clone(t.Root()) returns a Tree whose single top-level form is a List
// holding copies of t's top-level forms.
func (t *Tree) Root() Node {
	return Node{tree: t, h: t.root}
}

// NewAtom allocates a new, unattached Atom node holding a copy of value.
// The returned node belongs to t and must be attached with Append,
// Prepend, or InsertAfter before it appears in any traversal.
func (t *Tree) NewAtom(value []byte) Node {
	h := t.arena.Allocate(arena.Atom)
	iv := t.atoms.Intern(value)
	t.arena.Node(h).Value = int32(iv)
	return Node{tree: t, h: h}
}

// NewAtomString is a convenience wrapper around NewAtom for callers
// building atoms from string literals.
func (t *Tree) NewAtomString(value string) Node {
	return t.NewAtom([]byte(value))
}

// NewList allocates a new, unattached, empty List node. The returned
// node belongs to t and must be attached before it appears in any
// traversal.
func (t *Tree) NewList() Node {
	h := t.arena.Allocate(arena.List)
	return Node{tree: t, h: h}
}

// NodeCount returns the total number of nodes ever allocated in t,
// including the root and any detached nodes produced by Remove. It is
// primarily useful for tests and diagnostics, not for capacity planning.
func (t *Tree) NodeCount() int {
	return t.arena.Len()
}
