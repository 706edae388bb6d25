package minire

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedGroup = errors.New("missing closing )")
	ErrUnterminatedClass = errors.New("missing closing ]")
	ErrDanglingEscape    = errors.New(`trailing \`)
	ErrUnknownEscape     = errors.New("unknown escape sequence")
	ErrNothingToRepeat   = errors.New("nothing to repeat")
	ErrBadBackreference  = errors.New("invalid backreference number")
)

// SyntaxError reports a malformed pattern.
// Pos is the byte offset of the offending construct in Pattern.
type SyntaxError struct {
	Pattern string
	Pos     int
	err     error
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("minire: %v at position %d in %q", e.err, e.Pos, e.Pattern)
}

func (e SyntaxError) Unwrap() error {
	return e.err
}

var _ error = (*SyntaxError)(nil)

func newSyntaxError(pattern string, pos int, err error) SyntaxError {
	return SyntaxError{Pattern: pattern, Pos: pos, err: err}
}
