package assess

import (
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/chess"
)

// Heuristic weights. Box difference dominates; the three-sided-box terms
// pull in opposite directions on the same global count, the free-edge
// count breaks ties toward open positions.
const (
	BoxWeight       = 100
	DangerPenalty   = 25
	PotentialBonus  = 10
	MobilityPerMove = 1
)

// Evaluate scores b from player's perspective. The three-sided-box count
// is global rather than attributed to whoever actually moves next; both
// the penalty and the bonus read the same number. This mirrors the flat
// heuristic the bot has always played with, not a chain-parity analysis.
func Evaluate(b chess.Board, player chess.Turn) (score int) {
	score = BoxWeight * (b.Score(player) - b.Score(-player))

	danger := b.ThreeSidedBoxes()
	score -= DangerPenalty * danger
	score += PotentialBonus * danger

	score += MobilityPerMove * b.FreeMoveCount()
	return
}
