// The demo client plays uniformly random moves. It exercises the wire
// protocol end to end without the search engine.
package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/gamesock"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/chess"
)

var (
	server = flag.String("h", "localhost:80", "game server address")
	botID  = flag.Int("id", 1700, "bot id")
	table  = flag.Int("table", 17, "table id")
	pw     = flag.Int("pw", 1751, "table password")
	size   = flag.Int("size", 4, "board size in boxes per side")
)

func main() {
	flag.Parse()

	sock, err := gamesock.Dial(*server)
	logx.Must(err)
	defer sock.Close()

	seat, err := sock.Handshake(int32(*botID), int32(*table), int32(*pw),
		gamesock.OppRandomBotSecond, int32(*size))
	logx.Must(err)
	logx.Infof("seated as player %d", seat)

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		msg, err := sock.ReadMessage()
		logx.Must(err)

		switch msg.Code {
		case gamesock.PleasePlay:
			m := randomMove(rnd, *size)
			logx.Infof("playing %v", m)
			logx.Must(sock.SendMove(m))

		case gamesock.YourResult:
			logx.Infof("our result: %d", msg.Points)

		case gamesock.OppResult:
			logx.Infof("opponent played %v for %d", msg.Move, msg.OppPoints)

		case gamesock.GameOver:
			logx.Infof("game over: %d - %d", msg.Score1, msg.Score2)
			return

		case gamesock.Closing:
			logx.Info("server closing")
			return
		}
	}
}

// randomMove may well pick an occupied edge; the server answers with
// INVALID_MOVE and another PLEASE_PLAY, which is fine for a demo.
func randomMove(rnd *rand.Rand, size int) chess.Move {
	if rnd.Intn(2) == 0 {
		return chess.Move{Orient: chess.Horizontal, Row: rnd.Intn(size + 1), Col: rnd.Intn(size)}
	}
	return chess.Move{Orient: chess.Vertical, Row: rnd.Intn(size), Col: rnd.Intn(size + 1)}
}
