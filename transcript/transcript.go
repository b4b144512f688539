// Package transcript records the moves of one game in notation form and
// exports game records to disk.
package transcript

import (
	"fmt"
	"time"

	"notation/move"
)

// Stats aggregates notation-level counts over a transcript. None of the
// counts imply legality; they describe notation shape only.
type Stats struct {
	Moves    int
	Actions  int
	Compound int // moves with more than one action
	Drops    int
	Captures int
	Inferred int // actions with an omitted piece
}

// Transcript accumulates the moves of a single game, in play order, with
// minimal metadata. The zero value is not usable; build with New or
// FromWire.
type Transcript struct {
	game    string
	started time.Time
	moves   []move.Move
}

func New(game string) *Transcript {
	return &Transcript{
		game:    game,
		started: time.Now().UTC(),
	}
}

// FromWire rebuilds a transcript from the codec's wire string, one move per
// period-separated segment.
func FromWire(c *move.Codec, game, text string) (*Transcript, error) {
	moves, err := c.Load(text)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript for game %q: %w", game, err)
	}
	t := New(game)
	t.moves = moves
	return t, nil
}

func (t *Transcript) Game() string       { return t.game }
func (t *Transcript) Started() time.Time { return t.started }
func (t *Transcript) Size() int          { return len(t.moves) }

// Record appends a move to the transcript.
func (t *Transcript) Record(m move.Move) {
	t.moves = append(t.moves, m)
}

// Moves returns a copy of the recorded moves in play order.
func (t *Transcript) Moves() []move.Move {
	return append([]move.Move(nil), t.moves...)
}

// Wire serializes the whole game with the codec's string form.
func (t *Transcript) Wire(c *move.Codec) string {
	return c.Dump(t.moves)
}

// Stats walks the transcript once and counts notation features.
func (t *Transcript) Stats() Stats {
	s := Stats{Moves: len(t.moves)}
	for _, m := range t.moves {
		s.Actions += m.Size()
		if m.IsCompound() {
			s.Compound++
		}
		for _, a := range m.Actions() {
			if a.IsDrop() {
				s.Drops++
			}
			if a.IsCapture() {
				s.Captures++
			}
			if a.IsInferred() {
				s.Inferred++
			}
		}
	}
	return s
}
