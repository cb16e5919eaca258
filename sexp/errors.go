package sexp

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Kind identifies the category of a sexp Error. It mirrors the small,
// closed error-code idiom used throughout OPA's storage package rather
// than wrapping arbitrary sentinel errors.
type Kind int

const (
	// UnexpectedClose means a ')' appeared with no matching open list.
	UnexpectedClose Kind = iota
	// UnclosedList means the input ended while one or more lists were
	// still open.
	UnclosedList
	// TypeMismatch means an operation expected a List node but was given
	// an Atom, or vice versa.
	TypeMismatch
	// OutOfRange means a numeric index fell outside [-Len, Len), or Head
	// was called on a node with no first child.
	OutOfRange
	// NotFound means a keyed lookup found no matching child.
	NotFound
	// CrossTree means a mutation tried to splice a node from one Tree
	// into another.
	CrossTree
	// InvalidArgument covers malformed call arguments not covered above
	// (e.g. removing or extracting the root, inserting relative to a node
	// with no parent, or attaching a node under its own descendant).
	InvalidArgument
)

func (k Kind) String() string {
	switch k {
	case UnexpectedClose:
		return "unexpected_close"
	case UnclosedList:
		return "unclosed_list"
	case TypeMismatch:
		return "type_mismatch"
	case OutOfRange:
		return "out_of_range"
	case NotFound:
		return "not_found"
	case CrossTree:
		return "cross_tree"
	case InvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

// Category reports whether k arises from parsing malformed input or from
// misusing the mutation/accessor API on an otherwise-valid tree. Callers
// that want to distinguish "bad input" from "programmer error" can branch
// on this instead of enumerating every Kind.
func (k Kind) Category() string {
	switch k {
	case UnexpectedClose, UnclosedList:
		return "parse"
	default:
		return "api"
	}
}

// Error is the single error type returned by this package. Offset is a
// byte offset into the original input for parse errors, and -1 when not
// applicable.
type Error struct {
	Kind    Kind
	Message string
	Offset  int
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("sexp: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("sexp: %s: %s", e.Kind, e.Message)
}

func newParseError(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: offset}
}

func newAPIError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: -1}
}

// notFoundWithSuggestion builds a NotFound error for a failed keyed
// lookup, appending a "did you mean" hint when one sibling key is close
// to the one requested. The threshold is deliberately tight (edit
// distance of at most 2) so the hint only fires on plausible typos.
func notFoundWithSuggestion(key string, candidates []string) *Error {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(key, c)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist >= 0 && bestDist <= 2 && best != key {
		return newAPIError(NotFound, "no child keyed %q (did you mean %q?)", key, best)
	}
	return newAPIError(NotFound, "no child keyed %q", key)
}
