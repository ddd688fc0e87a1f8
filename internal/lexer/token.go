// Package lexer provides the lexical recognizer for HID descriptor
// source text: byte classification, token views, and numeric literal
// accumulation with overflow detection. The mode-driven state machine
// that consumes these primitives lives in internal/compiler.
package lexer

import (
	"github.com/hiddesc/hiddesc/internal/types"
)

// Token is a (start, length) view into the source buffer. It carries no
// ownership; the underlying bytes belong to the compile call and are
// never copied.
type Token struct {
	Start  int
	Length int
}

// NewToken creates a token starting at the given byte offset.
func NewToken(start, length int) Token {
	return Token{Start: start, Length: length}
}

// End returns the byte offset one past the token.
func (t Token) End() int {
	return t.Start + t.Length
}

// Bytes returns the token text as a sub-slice of source.
func (t Token) Bytes(source []byte) []byte {
	return source[t.Start:t.End()]
}

// Span converts the token into a types.Span.
func (t Token) Span() types.Span {
	return types.NewSpan(types.ByteOffset(t.Start), types.ByteOffset(t.End()))
}

// EqualFold reports whether the token text equals name under
// case-insensitive ASCII comparison.
func (t Token) EqualFold(source []byte, name string) bool {
	return EqualFold(t.Bytes(source), name)
}
