package sexp

import (
	"time"

	"github.com/arbortext/sexp/internal/arena"
	"github.com/arbortext/sexp/sexp/metrics"
)

// frame tracks one open List while parsing: its handle, and the handle
// of its most recently linked child (arena.None if it has none yet),
// used as the LinkAfter anchor for the next child.
type frame struct {
	list arena.Handle
	last arena.Handle
}

// Parse reads one S-expression document from input and returns a new
// Tree. Nesting is tracked with an explicit stack rather than recursion,
// so parse depth is bounded by available heap rather than goroutine
// stack size.
//
// Empty or all-whitespace input is not an error: it produces a Tree
// whose root has zero children. A document with unbalanced parens is
// rejected with UnexpectedClose or UnclosedList, each carrying the byte
// offset of the offending token.
func Parse(input []byte) (*Tree, error) {
	start := time.Now()
	t, err := parse(input)
	if err != nil {
		var kind string
		if e, ok := err.(*Error); ok {
			kind = e.Kind.String()
		}
		metrics.ObserveParse(time.Since(start), kind)
		return nil, err
	}
	metrics.ObserveParse(time.Since(start), "")
	return t, nil
}

func parse(input []byte) (*Tree, error) {
	t := NewTree()
	z := newTokenizer(input)

	stack := []frame{{list: t.root, last: arena.None}}

	for {
		tok := z.next()
		switch tok.kind {
		case tokEOF:
			if len(stack) > 1 {
				return nil, newParseError(UnclosedList, tok.offset, "input ended with %d list(s) still open", len(stack)-1)
			}
			return t, nil

		case tokOpen:
			h := t.arena.Allocate(arena.List)
			top := &stack[len(stack)-1]
			t.arena.LinkAfter(top.list, top.last, h)
			top.last = h
			stack = append(stack, frame{list: h, last: arena.None})

		case tokClose:
			if len(stack) == 1 {
				return nil, newParseError(UnexpectedClose, tok.offset, "unmatched ')'")
			}
			stack = stack[:len(stack)-1]

		case tokAtom:
			h := t.NewAtom(tok.text).h
			top := &stack[len(stack)-1]
			t.arena.LinkAfter(top.list, top.last, h)
			top.last = h
		}
	}
}
