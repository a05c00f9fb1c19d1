package syntax

import (
	"fmt"

	"tlog.app/go/errors"
)

// ErrorKind classifies a compilation error.
type ErrorKind uint8

const (
	LexicalError ErrorKind = iota // unrecognized character, unterminated string
	SyntaxError                   // unexpected or missing token
	NameError                     // undeclared or redeclared name
	TypeError                     // type mismatch, wrong arity
)

var errorKindNames = [...]string{
	LexicalError: "lexical error",
	SyntaxError:  "syntax error",
	NameError:    "name error",
	TypeError:    "type error",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is a positioned compilation error. The first Error aborts the
// compilation unit; there is no recovery.
type Error struct {
	Kind ErrorKind
	Pos  Pos
	Msg  string
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}

// Errorf returns an *Error of the given kind at pos.
func Errorf(kind ErrorKind, pos Pos, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// AsError finds the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}
