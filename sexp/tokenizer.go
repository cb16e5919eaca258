package sexp

// tokenKind enumerates the handful of lexical shapes a tokenizer needs
// to recognize; everything that isn't a paren or whitespace is atom
// text.
type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokOpen
	tokClose
	tokAtom
)

type token struct {
	kind tokenKind
	// text is a slice of the tokenizer's input for tokAtom; empty
	// otherwise. It aliases the caller's buffer and must be copied
	// before being retained; intern.Table.Intern makes its own copy.
	text []byte
	// offset is the byte offset of the token's first byte.
	offset int
}

// tokenizer splits raw input into tokens one at a time. It holds no
// token buffer of its own: atom text is returned as a slice of the
// original input, and the parser is responsible for copying bytes it
// needs to keep (via intern.Table.Intern, which already copies).
type tokenizer struct {
	src []byte
	pos int
}

func newTokenizer(src []byte) *tokenizer {
	return &tokenizer{src: src}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func isDelimiter(b byte) bool {
	return b == '(' || b == ')' || isSpace(b)
}

// next returns the next token, or a tokEOF token once the input is
// exhausted. It never returns an error: malformed nesting is a parser
// concern, not a lexical one, since an unmatched ')' is a perfectly
// valid individual token.
func (z *tokenizer) next() token {
	for z.pos < len(z.src) && isSpace(z.src[z.pos]) {
		z.pos++
	}
	if z.pos >= len(z.src) {
		return token{kind: tokEOF, offset: z.pos}
	}

	start := z.pos
	switch z.src[z.pos] {
	case '(':
		z.pos++
		return token{kind: tokOpen, offset: start}
	case ')':
		z.pos++
		return token{kind: tokClose, offset: start}
	default:
		for z.pos < len(z.src) && !isDelimiter(z.src[z.pos]) {
			z.pos++
		}
		return token{kind: tokAtom, text: z.src[start:z.pos], offset: start}
	}
}
