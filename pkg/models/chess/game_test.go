package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameTurnPassesWithoutCapture(t *testing.T) {
	g := NewGame(1, 1)
	require.Equal(t, Player1, g.NowPlayer)

	captured, err := g.Add(Move{Orient: Horizontal, Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, captured)
	assert.Equal(t, Player2, g.NowPlayer)
}

func TestGameCaptureKeepsTurn(t *testing.T) {
	g := NewGame(1, 1)

	// P1, P2, P1 set up the box; P2 closes it and keeps the turn.
	for _, m := range []Move{
		{Orient: Horizontal, Row: 0, Col: 0},
		{Orient: Horizontal, Row: 1, Col: 0},
		{Orient: Vertical, Row: 0, Col: 0},
	} {
		_, err := g.Add(m)
		require.NoError(t, err)
	}
	require.Equal(t, Player2, g.NowPlayer)

	captured, err := g.Add(Move{Orient: Vertical, Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, captured)
	assert.Equal(t, Player2, g.NowPlayer)
	assert.Equal(t, 0, g.Player1Score)
	assert.Equal(t, 1, g.Player2Score)
	assert.True(t, g.IsTerminal())
	assert.Equal(t, Player2, g.Owner(0, 0))
	assert.Equal(t, 4, g.StepCount())
}

func TestGameRejectsReplay(t *testing.T) {
	g := NewGame(2, 2)
	m := Move{Orient: Vertical, Row: 1, Col: 2}

	_, err := g.Add(m)
	require.NoError(t, err)
	require.Equal(t, Player2, g.NowPlayer)

	_, err = g.Add(m)
	require.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, Player2, g.NowPlayer, "failed move must not flip the turn")
	assert.Equal(t, 1, g.StepCount())
}
