package transcript

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"notation/move"
	"notation/profile"
)

func testCodec() *move.Codec {
	return move.New(move.WithValidator(profile.Chess()))
}

func sampleTranscript(t *testing.T, c *move.Codec) *Transcript {
	t.Helper()
	tr := New("game-1")
	for _, tokens := range [][]string{
		{"e2", "e4"},
		{"e7", "e5", "c:p"},
		{"e1", "g1", "C:K", "h1", "f1", "C:R"},
		{"d4", move.Reserve, "c:p"},
	} {
		m, err := c.Parse(tokens)
		require.NoError(t, err)
		tr.Record(m)
	}
	return tr
}

func TestTranscriptStats(t *testing.T) {
	c := testCodec()
	tr := sampleTranscript(t, c)

	require.Equal(t, "game-1", tr.Game())
	require.Equal(t, 4, tr.Size())

	s := tr.Stats()
	require.Equal(t, Stats{
		Moves:    4,
		Actions:  5,
		Compound: 1,
		Drops:    0,
		Captures: 1,
		Inferred: 1,
	}, s)
}

func TestTranscriptWireRoundTrip(t *testing.T) {
	c := testCodec()
	tr := sampleTranscript(t, c)

	wire := tr.Wire(c)
	require.Equal(t, "e2,e4.e7,e5,c:p.e1,g1,C:K;h1,f1,C:R.d4,*,c:p", wire)

	loaded, err := FromWire(c, "game-1", wire)
	require.NoError(t, err)
	require.Equal(t, tr.Size(), loaded.Size())
	require.Equal(t, wire, loaded.Wire(c), "wire form must survive a reload")

	_, err = FromWire(c, "game-bad", "e2")
	require.Error(t, err)
}

func TestTranscriptMovesIsACopy(t *testing.T) {
	c := testCodec()
	tr := sampleTranscript(t, c)

	moves := tr.Moves()
	moves[0] = move.Move{}
	require.Equal(t, 4, tr.Size())
	require.Equal(t, []string{"e2", "e4"}, tr.Moves()[0].Tokens())
}

func TestWriterWriteTranscript(t *testing.T) {
	c := testCodec()
	tr := sampleTranscript(t, c)

	w, err := NewWriter(t.TempDir(), c)
	require.NoError(t, err)

	path, err := w.WriteTranscript(tr)
	require.NoError(t, err)
	require.Equal(t, "game-1.csv", filepath.Base(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5, "header plus one row per move")
	require.Equal(t, []string{"step", "notation", "actions", "drops", "captures", "inferred"}, rows[0])
	require.Equal(t, []string{"3", "e1,g1,C:K;h1,f1,C:R", "2", "0", "0", "0"}, rows[3])
	require.Equal(t, []string{"4", "d4,*,c:p", "1", "0", "1", "0"}, rows[4])
}

func TestWriterWriteStats(t *testing.T) {
	c := testCodec()
	tr := sampleTranscript(t, c)

	w, err := NewWriter(t.TempDir(), c)
	require.NoError(t, err)

	path, err := w.WriteStats([]*Transcript{tr})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"game-1", "4", "5", "1", "0", "1", "1"}, rows[1])
}
