package move

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorWrapping(t *testing.T) {
	v := chessStub()
	c := New(WithValidator(v))

	_, err := c.Parse([]string{"e2", "bogus"})
	require.Error(t, err)

	// Outermost error is structural; unwrapping reaches the field error.
	var outer *Error
	require.ErrorAs(t, err, &outer)
	require.Equal(t, KindMove, outer.Kind)
	require.Equal(t, 0, outer.Index)

	inner := errors.Unwrap(outer)
	var action *Error
	require.ErrorAs(t, inner, &action)
	require.Equal(t, KindAction, action.Kind)

	var field *Error
	require.ErrorAs(t, errors.Unwrap(action), &field)
	require.Equal(t, KindLocation, field.Kind)
	require.Equal(t, "bogus", field.Token)
}

func TestErrorMessages(t *testing.T) {
	v := chessStub()
	_, err := NewAction(v, "e2", "e4", "??")
	require.Error(t, err)
	require.Contains(t, err.Error(), "piece")
	require.Contains(t, err.Error(), `"??"`)

	_, notNotation := KindOf(errors.New("unrelated"))
	require.False(t, notNotation)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "location", KindLocation.String())
	require.Equal(t, "piece", KindPiece.String())
	require.Equal(t, "action", KindAction.String())
	require.Equal(t, "move", KindMove.String())
}
