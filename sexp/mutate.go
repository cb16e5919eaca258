package sexp

import (
	"github.com/arbortext/sexp/internal/arena"
	"github.com/arbortext/sexp/sexp/metrics"
)

// Append attaches child as the last child of parent. parent must be a
// List node. If child is already attached somewhere — including as an
// existing child of parent — it is unlinked first, so Append doubles as
// a "move to the end" operation; this is how a node is reordered within
// its own parent.
//
// Append fails with CrossTree if child and parent belong to different
// Trees, and with TypeMismatch if parent is not a List. A failed call
// leaves both nodes exactly as they were.
func Append(parent, child Node) error {
	return insert(parent, child, func(a *arena.Arena, p arena.Handle) arena.Handle {
		return a.Node(p).Last
	})
}

// Prepend attaches child as the first child of parent. See Append for
// the shared semantics (move-on-reattach, error conditions, exception
// safety).
func Prepend(parent, child Node) error {
	return insert(parent, child, func(a *arena.Arena, p arena.Handle) arena.Handle {
		return arena.None
	})
}

// InsertAfter attaches child immediately following anchor in anchor's
// parent's child chain. anchor must not be the Tree's root (the root
// has no parent to insert within).
func InsertAfter(anchor, child Node) error {
	if anchor.tree.arena.Node(anchor.h).Parent == arena.None {
		return newAPIError(InvalidArgument, "cannot insert relative to the root node")
	}
	parent := anchor.Parent()
	return insert(parent, child, func(a *arena.Arena, p arena.Handle) arena.Handle {
		return anchor.h
	})
}

func insert(parent, child Node, anchorFor func(*arena.Arena, arena.Handle) arena.Handle) error {
	if parent.tree != child.tree {
		return newAPIError(CrossTree, "child belongs to a different Tree than parent")
	}
	if parent.tree.arena.Node(parent.h).Kind != arena.List {
		return newAPIError(TypeMismatch, "parent is not a List node")
	}
	if child.h == parent.h || isAncestor(parent.tree.arena, child.h, parent.h) {
		return newAPIError(InvalidArgument, "cannot attach a node under its own descendant")
	}

	a := parent.tree.arena
	a.Unlink(child.h) // no-op if child is currently detached
	anchor := anchorFor(a, parent.h)
	a.LinkAfter(parent.h, anchor, child.h)
	metrics.IncMutation("insert")
	return nil
}

// isAncestor reports whether candidate is node or one of its transitive
// parents, which would make attaching node under candidate a cycle.
func isAncestor(t *arena.Arena, candidate, node arena.Handle) bool {
	for h := node; h != arena.None; h = t.Node(h).Parent {
		if h == candidate {
			return true
		}
	}
	return false
}

// Remove detaches n from its parent's child chain. n remains a valid,
// independently addressable Node — its storage slot is not reclaimed —
// but it no longer appears in any traversal of its former parent, and
// its own Parent is now the zero Node.
//
// Remove fails with InvalidArgument if n is its Tree's root, which has
// no parent to remove it from.
func Remove(n Node) error {
	if n.tree.arena.Node(n.h).Parent == arena.None {
		return newAPIError(InvalidArgument, "cannot remove the root node")
	}
	n.tree.arena.Unlink(n.h)
	metrics.IncMutation("remove")
	return nil
}

// Extract removes n from its Tree and returns a brand-new, independent
// Tree whose sole top-level form is a deep copy of n. It is equivalent
// to Remove followed by Clone, except the two together are observable
// as one operation: n's subtree is unlinked from its original Tree and
// its content survives, intact, as the returned Tree's contents.
//
// Extract fails with InvalidArgument if n is its Tree's root.
func Extract(n Node) (*Tree, error) {
	if n.tree.arena.Node(n.h).Parent == arena.None {
		return nil, newAPIError(InvalidArgument, "cannot extract the root node")
	}
	out := cloneToNewTree(n)
	n.tree.arena.Unlink(n.h)
	metrics.IncMutation("extract")
	return out, nil
}

// Clone returns a brand-new, independent Tree whose sole top-level form
// is a deep copy of n. Unlike Extract, n and its Tree are left
// untouched.
func Clone(n Node) *Tree {
	out := cloneToNewTree(n)
	metrics.IncMutation("clone")
	return out
}
