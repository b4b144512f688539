package move

import (
	"hash/fnv"

	"notation/utils"
)

// Move is an ordered, non-empty sequence of actions applied in order,
// together with the flat token sequence the actions were derived from.
// Equality and hashing are defined over the tokens, so moves built by
// different construction paths compare equal. Moves are immutable; Extend
// on a Codec returns a new Move.
type Move struct {
	actions []Action
	tokens  []string
}

// Codec turns flat token sequences and wire strings into moves and back.
// The zero options give a permissive validator that accepts any token free
// of separator characters.
type Codec struct {
	validator Validator
}

type Option func(*Codec)

// WithValidator injects the host system's location and piece checks.
func WithValidator(v Validator) Option {
	return func(c *Codec) {
		if v != nil {
			c.validator = v
		}
	}
}

func New(opts ...Option) *Codec {
	c := &Codec{validator: permissive{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// validLength is the structural invariant on the flat form: at least one
// 2-token group, and a total length congruent to 0 or 2 mod 3.
func validLength(n int) bool {
	return n >= 2 && (n%3 == 0 || n%3 == 2)
}

// Parse decodes a flat token sequence into a move. It fails with a
// KindMove error on a bad overall length or on any malformed group.
func (c *Codec) Parse(tokens []string) (Move, error) {
	if !validLength(len(tokens)) {
		return Move{}, newMoveError("token count must be >= 2 and congruent to 0 or 2 mod 3")
	}
	actions, err := c.group(tokens)
	if err != nil {
		return Move{}, err
	}
	return Move{actions: actions, tokens: append([]string(nil), tokens...)}, nil
}

// group partitions tokens greedily left to right into action groups of
// width 3 (explicit piece), with a final width-2 group (inferred piece)
// when two tokens remain. The length precondition guarantees the remainder
// is never 1; hitting one anyway means the caller skipped validation.
func (c *Codec) group(tokens []string) ([]Action, error) {
	var actions []Action
	for i := 0; i < len(tokens); {
		remaining := len(tokens) - i
		var action Action
		var err error
		switch {
		case remaining == 2:
			action, err = NewAction(c.validator, tokens[i], tokens[i+1], "")
		case remaining >= 3:
			action, err = NewAction(c.validator, tokens[i], tokens[i+1], tokens[i+2])
		default:
			return nil, wrapMoveError(i, newMoveError("grouping reached remainder 1: length precondition not enforced"))
		}
		if err != nil {
			return nil, wrapMoveError(i, err)
		}
		actions = append(actions, action)
		if remaining == 2 {
			i += 2
		} else {
			i += 3
		}
	}
	return actions, nil
}

// IsValid reports whether tokens decode cleanly. It never returns an error.
func (c *Codec) IsValid(tokens []string) bool {
	_, err := c.Parse(tokens)
	return err == nil
}

// FromActions assembles a move from pre-built actions. The flat token form
// is the in-order flattening of each action's Tokens; a flattening whose
// token count breaks the length invariant (two inferred actions followed by
// an explicit one, say) is rejected, so no move ever exists in an
// invariant-violating state.
func (c *Codec) FromActions(actions []Action) (Move, error) {
	if len(actions) == 0 {
		return Move{}, newMoveError("a move needs at least one action")
	}
	var tokens []string
	for _, a := range actions {
		tokens = append(tokens, a.Tokens()...)
	}
	if !validLength(len(tokens)) {
		return Move{}, newMoveError("flattened actions must total >= 2 tokens, congruent to 0 or 2 mod 3")
	}
	return Move{actions: append([]Action(nil), actions...), tokens: tokens}, nil
}

// Extend returns a new move whose tokens are m's followed by the flattened
// extra actions, re-validated as a whole.
func (c *Codec) Extend(m Move, extra []Action) (Move, error) {
	tokens := m.Tokens()
	for _, a := range extra {
		tokens = append(tokens, a.Tokens()...)
	}
	return c.Parse(tokens)
}

func (m Move) Size() int        { return len(m.actions) }
func (m Move) IsEmpty() bool    { return len(m.actions) == 0 }
func (m Move) IsSimple() bool   { return len(m.actions) == 1 }
func (m Move) IsCompound() bool { return len(m.actions) > 1 }

func (m Move) FirstAction() Action { return m.actions[0] }
func (m Move) LastAction() Action  { return m.actions[len(m.actions)-1] }

// Actions returns a defensive copy of the action sequence.
func (m Move) Actions() []Action {
	return append([]Action(nil), m.actions...)
}

// Tokens returns a defensive copy of the canonical flat token form.
func (m Move) Tokens() []string {
	return append([]string(nil), m.tokens...)
}

func (m Move) HasDrops() bool {
	for _, a := range m.actions {
		if a.IsDrop() {
			return true
		}
	}
	return false
}

func (m Move) HasCaptures() bool {
	for _, a := range m.actions {
		if a.IsCapture() {
			return true
		}
	}
	return false
}

func (m Move) HasInferred() bool {
	for _, a := range m.actions {
		if a.IsInferred() {
			return true
		}
	}
	return false
}

// BoardMoves returns the actions whose endpoints are both board coordinates.
func (m Move) BoardMoves() []Action {
	var out []Action
	for _, a := range m.actions {
		if a.IsBoardToBoard() {
			out = append(out, a)
		}
	}
	return out
}

// Sources returns the distinct source locations in order of first occurrence.
func (m Move) Sources() []string {
	srcs := make([]string, len(m.actions))
	for i, a := range m.actions {
		srcs[i] = a.Source()
	}
	return utils.Dedupe(srcs)
}

// Destinations returns the distinct destinations in order of first occurrence.
func (m Move) Destinations() []string {
	dsts := make([]string, len(m.actions))
	for i, a := range m.actions {
		dsts[i] = a.Destination()
	}
	return utils.Dedupe(dsts)
}

// Pieces returns the distinct explicit piece identifiers in order of first
// occurrence. Inferred actions contribute nothing.
func (m Move) Pieces() []string {
	var pieces []string
	for _, a := range m.actions {
		if p, ok := a.Piece(); ok {
			pieces = append(pieces, p)
		}
	}
	return utils.Dedupe(pieces)
}

// IsValid re-checks the length invariant and every action against v.
func (m Move) IsValid(v Validator) bool {
	if !validLength(len(m.tokens)) {
		return false
	}
	for _, a := range m.actions {
		if !a.IsValid(v) {
			return false
		}
	}
	return true
}

// Equal reports structural equality over the token sequences.
func (m Move) Equal(other Move) bool {
	if len(m.tokens) != len(other.tokens) {
		return false
	}
	for i, t := range m.tokens {
		if t != other.tokens[i] {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit hash of the token sequence.
func (m Move) Hash() Hash {
	h := fnv.New64a()
	for _, t := range m.tokens {
		h.Write([]byte(t))
		h.Write([]byte{0})
	}
	return Hash(h.Sum64())
}

// permissive accepts any non-empty token that contains no wire separator.
type permissive struct{}

func (permissive) IsValidLocation(token string) bool { return wireSafe(token) }
func (permissive) IsValidPiece(token string) bool    { return wireSafe(token) }
