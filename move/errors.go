package move

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the failure modes of notation decoding. Field-level
// kinds (location, piece) are always wrapped in an action or move error
// before they reach a caller of Parse or Load.
type ErrorKind int

const (
	KindLocation ErrorKind = iota // a source/destination token is not a valid location
	KindPiece                     // a piece token is not a well-formed identifier
	KindAction                    // a single action could not be constructed
	KindMove                      // structural failure of the whole move
)

func (k ErrorKind) String() string {
	switch k {
	case KindLocation:
		return "location"
	case KindPiece:
		return "piece"
	case KindAction:
		return "action"
	case KindMove:
		return "move"
	default:
		return "unknown"
	}
}

// Error is the tagged error type for the whole notation taxonomy. Index is
// the offending group's starting offset in its move's flat token sequence
// (for both the array and the wire front-end), or -1 when no position
// applies.
type Error struct {
	Kind  ErrorKind
	Token string
	Index int
	msg   string
	cause error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s error: %s", e.Kind, e.msg)
	if e.Token != "" {
		s += fmt.Sprintf(" (token %q)", e.Token)
	}
	if e.Index >= 0 {
		s += fmt.Sprintf(" at index %d", e.Index)
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.cause }

func newFieldError(kind ErrorKind, token, msg string) *Error {
	return &Error{Kind: kind, Token: token, Index: -1, msg: msg}
}

func newActionError(cause error) *Error {
	return &Error{Kind: KindAction, Index: -1, msg: "invalid action", cause: cause}
}

func newMoveError(msg string) *Error {
	return &Error{Kind: KindMove, Index: -1, msg: msg}
}

// wrapMoveError re-raises a field or action error as a structural move error
// carrying the starting index of the offending group.
func wrapMoveError(index int, cause error) *Error {
	return &Error{Kind: KindMove, Index: index, msg: "invalid action group", cause: cause}
}

// KindOf reports the outermost kind of err, or false for errors outside the
// notation taxonomy.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
