package hiddesc

import (
	"fmt"

	"github.com/hiddesc/hiddesc/internal/compiler"
	"github.com/hiddesc/hiddesc/internal/types"
)

// Error is a compile failure bound to a source position. The zero
// Error (Kind None) reports success; CompileError returns it that way.
//
// Pos.Offset counts UTF-8 code points, not bytes, and Line and Column
// start at 1. A line feed advances Line and resets Column; a carriage
// return on its own does neither.
type Error struct {
	Kind Kind
	Pos  Position
}

// newError converts the compiler's byte-offset error into a
// position-bearing Error by walking the source once.
func newError(src Source, res compiler.Error) Error {
	if res.Kind == types.None {
		return Error{Kind: types.None, Pos: types.Position{Line: 1, Column: 1}}
	}
	return Error{Kind: res.Kind, Pos: types.PositionAt(src.Bytes(), res.Offset)}
}

// Error renders the failure as "line:col: message".
func (e Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Kind)
}

// Is lets errors.Is match a compile error against a Kind sentinel:
//
//	if errors.Is(err, hiddesc.MissingUsagePage) { ... }
func (e Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

// Ok reports whether the Error represents success.
func (e Error) Ok() bool {
	return e.Kind == types.None
}

// PositionOf returns the Position of the given byte offset within the
// source, using the same accounting as compile errors: code points
// instead of bytes, LF advances the line, CR is neutral. Useful for
// locating Lint notices, whose spans are byte offsets.
func PositionOf(src Source, offset int) Position {
	return types.PositionAt(src.Bytes(), offset)
}
