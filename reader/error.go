package reader

import (
	"errors"
	"fmt"
)

// Error conditions reported by the reader.
const (
	// UnexpectedEOF signals that the stream ended in the middle of a form, or
	// at the top level when the caller declared end of stream an error.
	UnexpectedEOF = "unexpected-eof"
	// UnsupportedEscape signals an illegal character following a backslash
	// inside a string literal.
	UnsupportedEscape = "unsupported-escape"
	// UnsupportedCharName signals an unrecognized multi-character name in a
	// character literal.
	UnsupportedCharName = "unsupported-character-name"
	// UnmatchedDelimiter signals a closing delimiter with no corresponding
	// opener.
	UnmatchedDelimiter = "unmatched-delimiter"
	// InvalidSyntax signals a token that matched none of the literal
	// classifiers.
	InvalidSyntax = "invalid-syntax"
	// DivisionByZero signals a ratio literal with a zero denominator.
	DivisionByZero = "division-by-zero"
)

// Error is a syntax error detected while reading.  The Condition identifies
// the class of error and Msg carries the offending character or token text.
type Error struct {
	Condition string
	Loc       *Location
	Msg       string
}

func (e *Error) Error() string {
	if e.Loc != nil {
		return fmt.Sprintf("%s: %s: %s", e.Loc, e.Condition, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Condition, e.Msg)
}

// IsCondition returns true if err is a reader Error with the given
// condition.
func IsCondition(err error, condition string) bool {
	var rerr *Error
	return errors.As(err, &rerr) && rerr.Condition == condition
}

func (r *Reader) errorf(condition string, format string, v ...interface{}) error {
	return &Error{
		Condition: condition,
		Loc:       r.s.Loc(),
		Msg:       fmt.Sprintf(format, v...),
	}
}
