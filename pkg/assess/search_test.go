package assess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/chess"
)

// naiveValue is plain minimax with no pruning, same role semantics:
// a capture keeps the ply with the same side.
func naiveValue(b chess.Board, depth int, maximizing bool, player chess.Turn) int {
	if depth <= 0 || b.IsTerminal() {
		return Evaluate(b, player)
	}

	mover := player
	if !maximizing {
		mover = -player
	}

	var value int
	if maximizing {
		value = -inf
	} else {
		value = inf
	}

	for _, m := range b.FreeMoves() {
		child, captured, _ := b.Apply(m, mover)
		next := maximizing
		if captured == 0 {
			next = !next
		}

		v := naiveValue(child, depth-1, next, player)
		if maximizing && v > value {
			value = v
		}
		if !maximizing && v < value {
			value = v
		}
	}

	return value
}

func naiveBest(b chess.Board, depth int, player chess.Turn) (best chess.Move, ok bool) {
	bestScore := -inf
	for _, m := range b.FreeMoves() {
		child, captured, _ := b.Apply(m, player)
		if v := naiveValue(child, depth-1, captured > 0, player); v > bestScore {
			bestScore = v
			best = m
			ok = true
		}
	}
	return
}

// randomPosition plays steps legal moves with proper turn passing and
// returns the board plus the side to move.
func randomPosition(t *testing.T, rnd *rand.Rand, steps int) (chess.Board, chess.Turn) {
	t.Helper()

	b := chess.NewBoard(2, 2)
	mover := chess.Player1
	for i := 0; i < steps; i++ {
		moves := b.FreeMoves()
		next, captured, err := b.Apply(moves[rnd.Intn(len(moves))], mover)
		require.NoError(t, err)
		if captured == 0 {
			mover = -mover
		}
		b = next
	}
	return b, mover
}

func TestAlphaBetaMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	engine := NewEngine(3, rnd)

	for _, steps := range []int{0, 2, 4, 6, 8, 10} {
		for i := 0; i < 4; i++ {
			b, mover := randomPosition(t, rnd, steps)

			wantMove, wantOK := naiveBest(b, engine.Depth, mover)
			gotMove, gotOK := engine.BestMove(b, mover)

			require.Equal(t, wantOK, gotOK, "steps=%d", steps)
			if wantOK {
				assert.Equal(t, wantMove, gotMove, "steps=%d board:\n%s", steps, b)
			}
		}
	}
}

func TestBestMoveDeterministic(t *testing.T) {
	b, mover := randomPosition(t, rand.New(rand.NewSource(5)), 4)

	first, ok := NewEngine(4, rand.New(rand.NewSource(1))).BestMove(b, mover)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		again, ok := NewEngine(4, rand.New(rand.NewSource(99))).BestMove(b, mover)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestBestMoveTakesOfferedBox(t *testing.T) {
	b := chess.NewBoard(2, 1)

	var err error
	for _, m := range []chess.Move{
		{Orient: chess.Horizontal, Row: 0, Col: 0},
		{Orient: chess.Vertical, Row: 0, Col: 0},
		{Orient: chess.Vertical, Row: 0, Col: 1},
	} {
		b, _, err = b.Apply(m, chess.Player2)
		require.NoError(t, err)
	}

	m, ok := NewEngine(3, rand.New(rand.NewSource(1))).BestMove(b, chess.Player1)
	require.True(t, ok)
	assert.Equal(t, chess.Move{Orient: chess.Horizontal, Row: 1, Col: 0}, m,
		"should close the three-sided box and keep the turn")
}

func TestBestMoveOnFinishedBoard(t *testing.T) {
	b := chess.NewBoard(1, 1)
	var err error
	for _, m := range b.FreeMoves() {
		b, _, err = b.Apply(m, chess.Player1)
		require.NoError(t, err)
	}

	engine := NewEngine(4, rand.New(rand.NewSource(2)))

	_, ok := engine.BestMove(b, chess.Player1)
	assert.False(t, ok)

	_, ok = engine.FallbackMove(b)
	assert.False(t, ok)
}

func TestFallbackMoveIsLegal(t *testing.T) {
	b := chess.NewBoard(2, 2)
	engine := NewEngine(1, rand.New(rand.NewSource(8)))

	m, ok := engine.FallbackMove(b)
	require.True(t, ok)
	assert.Contains(t, b.FreeMoves(), m)
}
