package move

import "strings"

// Wire format separators. Fields of one action join with FieldSep, actions
// of one move with ActionSep, and moves with MoveSep:
//
//	e1,g1,C:K;h1,f1,C:R.e7,e5
const (
	FieldSep  = ","
	ActionSep = ";"
	MoveSep   = "."
)

// wireSafe reports whether token can round-trip through the wire format.
func wireSafe(token string) bool {
	return token != "" && !strings.ContainsAny(token, FieldSep+ActionSep+MoveSep)
}

// Dump serializes moves to the delimited wire string. It is the exact
// inverse of Load on any text Load accepts.
func (c *Codec) Dump(moves []Move) string {
	moveStrs := make([]string, len(moves))
	for i, m := range moves {
		actionStrs := make([]string, len(m.actions))
		for j, a := range m.actions {
			actionStrs[j] = strings.Join(a.Tokens(), FieldSep)
		}
		moveStrs[i] = strings.Join(actionStrs, ActionSep)
	}
	return strings.Join(moveStrs, MoveSep)
}

// Load parses a wire string into moves, applying the same field validation
// as Parse. Failures are KindMove errors carrying the position of the
// offending action within its move.
func (c *Codec) Load(text string) ([]Move, error) {
	if text == "" {
		return nil, newMoveError("empty wire string")
	}
	var moves []Move
	for _, moveStr := range strings.Split(text, MoveSep) {
		var actions []Action
		offset := 0
		for _, actionStr := range strings.Split(moveStr, ActionSep) {
			fields := strings.Split(actionStr, FieldSep)
			if len(fields) < 2 || len(fields) > 3 {
				return nil, wrapMoveError(offset, newMoveError("an action has 2 or 3 fields"))
			}
			piece := ""
			if len(fields) == 3 {
				// An omitted piece is an absent field, never an empty one:
				// "a,b," must not decode as an inferred action.
				if fields[2] == "" {
					return nil, wrapMoveError(offset, newMoveError("a three-field action must carry a piece token"))
				}
				piece = fields[2]
			}
			action, err := NewAction(c.validator, fields[0], fields[1], piece)
			if err != nil {
				return nil, wrapMoveError(offset, err)
			}
			actions = append(actions, action)
			offset += len(fields)
		}
		m, err := c.FromActions(actions)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Package-level front-end over a codec with the permissive validator.
var defaultCodec = New()

func Parse(tokens []string) (Move, error)        { return defaultCodec.Parse(tokens) }
func IsValid(tokens []string) bool               { return defaultCodec.IsValid(tokens) }
func FromActions(actions []Action) (Move, error) { return defaultCodec.FromActions(actions) }
func Dump(moves []Move) string                   { return defaultCodec.Dump(moves) }
func Load(text string) ([]Move, error)           { return defaultCodec.Load(text) }
