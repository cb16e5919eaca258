package sexp

import (
	"github.com/arbortext/sexp/internal/arena"
	"github.com/arbortext/sexp/internal/intern"
)

// cloneToNewTree builds a fresh Tree whose root has exactly one child:
// a deep copy of n, with every descendant re-allocated in the new
// Tree's arena and every atom re-interned into the new Tree's table.
// The source Tree is left untouched; callers that want "extract"
// semantics unlink n from its original parent themselves afterward.
func cloneToNewTree(n Node) *Tree {
	out := NewTree()
	copied := cloneNodeInto(n.tree, n.h, out)
	out.arena.LinkAfter(out.root, arena.None, copied)
	return out
}

// cloneNodeInto recursively copies the subtree rooted at h (in src)
// into dst's arena and intern table, returning the handle of the new,
// as-yet-unattached copy. The caller is responsible for linking the
// returned handle into dst.
func cloneNodeInto(src *Tree, h arena.Handle, dst *Tree) arena.Handle {
	rec := src.arena.Node(h)

	if rec.Kind == arena.Atom {
		newH := dst.arena.Allocate(arena.Atom)
		value := src.atoms.Lookup(intern.Handle(rec.Value))
		dst.arena.Node(newH).Value = int32(dst.atoms.Intern(value))
		return newH
	}

	newH := dst.arena.Allocate(arena.List)
	last := arena.None
	for c := rec.First; c != arena.None; c = src.arena.Node(c).Next {
		childCopy := cloneNodeInto(src, c, dst)
		dst.arena.LinkAfter(newH, last, childCopy)
		last = childCopy
	}
	return newH
}
