package sexp

import (
	"bytes"
	"time"

	"github.com/arbortext/sexp/internal/arena"
	"github.com/arbortext/sexp/internal/intern"
	"github.com/arbortext/sexp/sexp/metrics"
)

// Serialize renders t's entire document back to canonical S-expression
// text: the root's children, space-joined, with no enclosing parens for
// the root itself (since the root is an implementation detail, not a
// form the original input wrote).
func Serialize(t *Tree) []byte {
	start := time.Now()
	var buf bytes.Buffer
	writeChildren(&buf, t, t.root)
	metrics.ObserveSerialize(time.Since(start))
	return buf.Bytes()
}

// SerializeNode renders a single node (and its descendants) to
// canonical text. Unlike Serialize(t), a List node here is wrapped in
// parens, since it is a form, not the implicit root.
func SerializeNode(n Node) []byte {
	start := time.Now()
	var buf bytes.Buffer
	writeNode(&buf, n.tree, n.h)
	metrics.ObserveSerialize(time.Since(start))
	return buf.Bytes()
}

func writeChildren(buf *bytes.Buffer, t *Tree, listHandle arena.Handle) {
	rec := t.arena.Node(listHandle)
	first := true
	for h := rec.First; h != arena.None; h = t.arena.Node(h).Next {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		writeNode(buf, t, h)
	}
}

func writeNode(buf *bytes.Buffer, t *Tree, h arena.Handle) {
	rec := t.arena.Node(h)
	if rec.Kind == arena.Atom {
		buf.Write(t.atoms.Lookup(intern.Handle(rec.Value)))
		return
	}
	buf.WriteByte('(')
	writeChildren(buf, t, h)
	buf.WriteByte(')')
}
