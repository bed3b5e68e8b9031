package message

import (
	"github.com/bytedance/sonic"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/chess"
)

// MoveMessage is the JSON document pushed to the per-game Redis list
// after every confirmed move.
type MoveMessage struct {
	TimeStamp
	GameUid
	Step         int
	Player       string
	Move         string
	Orient       chess.Orientation
	Row          int
	Col          int
	Player1Score int
	Player2Score int
}

func NewMoveMessage(str string) (newMoveMessage MoveMessage, err error) {
	err = sonic.UnmarshalString(str, &newMoveMessage)
	return
}

func (m MoveMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

// ListKey is the Redis list the game's move stream lives in.
func (g GameUid) ListKey() string {
	return "Game-" + string(g) + "-Moves"
}
