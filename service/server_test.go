package service

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"notation/move"
	"notation/profile"
)

func testServer(t *testing.T) (*Server, *Client) {
	t.Helper()
	s := NewServer(move.New(move.WithValidator(profile.Chess())))
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, NewClient(ts.URL)
}

func TestParseEndpoint(t *testing.T) {
	_, client := testServer(t)

	t.Run("explicit piece", func(t *testing.T) {
		m, err := client.Parse([]string{"e2", "e4", "C:P"})
		require.NoError(t, err)
		require.Equal(t, []string{"e2", "e4", "C:P"}, m.Tokens)
		require.Len(t, m.Actions, 1)
		require.Equal(t, "C:P", m.Actions[0].Piece)
		require.True(t, m.Actions[0].BoardMove)
		require.False(t, m.Compound)
	})

	t.Run("drop and capture flags", func(t *testing.T) {
		m, err := client.Parse([]string{move.Reserve, "e5", "C:P"})
		require.NoError(t, err)
		require.True(t, m.Actions[0].Drop)

		m, err = client.Parse([]string{"e4", move.Reserve, "c:p"})
		require.NoError(t, err)
		require.True(t, m.Actions[0].Capture)
	})

	t.Run("inferred piece is omitted from json", func(t *testing.T) {
		m, err := client.Parse([]string{"e2", "e4"})
		require.NoError(t, err)
		require.Empty(t, m.Actions[0].Piece)
		require.True(t, m.Inferred)
	})

	t.Run("malformed notation is rejected", func(t *testing.T) {
		_, err := client.Parse([]string{"e2"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "move")
	})
}

func TestValidateEndpoint(t *testing.T) {
	_, client := testServer(t)

	valid, err := client.Validate([]string{"e2", "e4"})
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = client.Validate([]string{"z9", "e4"})
	require.NoError(t, err)
	require.False(t, valid)

	valid, err = client.Validate(nil)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestLoadAndDumpEndpoints(t *testing.T) {
	_, client := testServer(t)

	moves, err := client.Load("e1,g1,C:K;h1,f1,C:R.e2,e4")
	require.NoError(t, err)
	require.Len(t, moves, 2)
	require.True(t, moves[0].Compound)
	require.Equal(t, "h1", moves[0].Actions[1].Source)

	text, err := client.Dump([][]string{
		{"e1", "g1", "C:K", "h1", "f1", "C:R"},
		{"e2", "e4"},
	})
	require.NoError(t, err)
	require.Equal(t, "e1,g1,C:K;h1,f1,C:R.e2,e4", text)

	_, err = client.Load("garbage")
	require.Error(t, err)

	_, err = client.Dump([][]string{{"e2"}})
	require.Error(t, err)
}

func TestHealthz(t *testing.T) {
	s, _ := testServer(t)
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, 200, rec.Code)
}
