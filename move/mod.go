// Package move implements a rule-agnostic codec for board game move
// notation: flat token sequences are grouped into atomic actions, actions
// into moves, and moves serialize to a compact delimited wire string. The
// codec checks structural and field-level shape only; whether a move is
// legal under any ruleset is out of scope.
package move

// Reserve is the sentinel location denoting a player's reserve (hand),
// as opposed to a board coordinate.
const Reserve = "*"

// Validator supplies the host system's token shape checks. Implementations
// must be pure; the codec calls them during construction only.
type Validator interface {
	// IsValidLocation reports whether token is a board coordinate or the
	// reserve sentinel.
	IsValidLocation(token string) bool
	// IsValidPiece reports whether token is a well-formed piece identifier.
	IsValidPiece(token string) bool
}

// Hash identifies a move by its token sequence. Moves with equal tokens
// hash identically regardless of how they were constructed.
type Hash uint64
