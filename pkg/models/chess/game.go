package chess

type Turn int8

const (
	Player1 Turn = 1
	Player2 Turn = -1
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

type Game struct {
	Board
	Player1Score int
	Player2Score int
	NowPlayer    Turn
}

func NewGame(rows, cols int) *Game {
	return &Game{
		Board:     NewBoard(rows, cols),
		NowPlayer: Player1,
	}
}

// Add plays edge e for NowPlayer. Completing at least one box keeps the
// turn with the same player, otherwise the turn passes.
func (g *Game) Add(e Move) (captured int, err error) {
	newBoard, captured, err := g.Board.Apply(e, g.NowPlayer)
	if err != nil {
		return 0, err
	}

	switch g.NowPlayer {
	case Player1:
		g.Player1Score += captured
	case Player2:
		g.Player2Score += captured
	}

	if captured == 0 {
		g.NowPlayer = -g.NowPlayer
	}

	g.Board = newBoard
	return captured, nil
}

func (g *Game) StepCount() int {
	return g.Board.PlacedEdges()
}
