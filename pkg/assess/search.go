package assess

import (
	"math/rand"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/chess"
)

const inf = 1 << 30

// Engine is a fixed-depth minimax searcher with alpha-beta pruning.
// Depth is in plies and must be at least 1. Rand only feeds the fallback
// move when search returns nothing; injecting it keeps games replayable.
type Engine struct {
	Depth int
	Rand  *rand.Rand
}

func NewEngine(depth int, rnd *rand.Rand) *Engine {
	if depth < 1 {
		depth = 1
	}
	return &Engine{Depth: depth, Rand: rnd}
}

// BestMove searches from b for player and returns the best move found.
// ok is false only on a terminal board. Ties keep the earliest move in
// chess.Board.FreeMoves order, so repeated calls on the same position
// return the same move.
func (e *Engine) BestMove(b chess.Board, player chess.Turn) (best chess.Move, ok bool) {
	moves := b.FreeMoves()
	if len(moves) == 0 {
		return best, false
	}

	alpha, beta := -inf, inf
	bestScore := -inf

	for _, m := range moves {
		child, captured, err := b.Apply(m, player)
		if err != nil {
			continue
		}

		// A capture grants the mover another ply, so the child keeps
		// the maximizing role.
		score := e.minimax(child, e.Depth-1, captured > 0, player, alpha, beta)
		if score > bestScore {
			bestScore = score
			best = m
			ok = true
		}

		alpha = max(alpha, bestScore)
		if alpha >= beta {
			break
		}
	}

	return
}

// FallbackMove picks a uniform-random legal move. It is the degenerate
// policy for when BestMove has nothing to search, never the primary path.
func (e *Engine) FallbackMove(b chess.Board) (m chess.Move, ok bool) {
	moves := b.FreeMoves()
	if len(moves) == 0 {
		return m, false
	}
	return moves[e.Rand.Intn(len(moves))], true
}

func (e *Engine) minimax(b chess.Board, depth int, maximizing bool, player chess.Turn, alpha, beta int) int {
	if depth <= 0 || b.IsTerminal() {
		return Evaluate(b, player)
	}

	moves := b.FreeMoves()

	mover := player
	if !maximizing {
		mover = -player
	}

	if maximizing {
		value := -inf
		for _, m := range moves {
			child, captured, err := b.Apply(m, mover)
			if err != nil {
				continue
			}

			nextMax := maximizing
			if captured == 0 {
				nextMax = !nextMax
			}

			value = max(value, e.minimax(child, depth-1, nextMax, player, alpha, beta))
			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := inf
	for _, m := range moves {
		child, captured, err := b.Apply(m, mover)
		if err != nil {
			continue
		}

		nextMax := maximizing
		if captured == 0 {
			nextMax = !nextMax
		}

		value = min(value, e.minimax(child, depth-1, nextMax, player, alpha, beta))
		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value
}
