// Package bot drives one game for the searching player: it mirrors the
// server's moves onto a local board, answers PLEASE_PLAY with the search
// engine's move, and treats any divergence between the two sides as fatal.
package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/assess"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/gamesock"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/chess"
)

// ErrDesync marks a fatal contract violation: the server reported
// something the local board cannot reproduce. Never retried.
var ErrDesync = errors.New("protocol desync")

type State int

const (
	AwaitingOpponent State = iota
	MustPlay
	Closed
	Over
)

func (s State) String() string {
	switch s {
	case AwaitingOpponent:
		return "AwaitingOpponent"
	case MustPlay:
		return "MustPlay"
	case Closed:
		return "Closed"
	case Over:
		return "Over"
	}
	return ""
}

// Transport is the message side of a seated game session.
type Transport interface {
	ReadMessage() (gamesock.Message, error)
	SendMove(chess.Move) error
}

// Recorder receives a copy of every confirmed move and the final result.
type Recorder interface {
	RecordMove(step int, m chess.Move, player chess.Turn, score1, score2 int)
	RecordEnd(score1, score2 int)
}

// Result is the outcome of one game. ClosedEarly is set when the server
// sent CLOSING before GAME_OVER; the scores are then the local tallies.
type Result struct {
	Score1      int
	Score2      int
	ClosedEarly bool
}

type Controller struct {
	game   *chess.Game
	engine *assess.Engine
	me     chess.Turn
	state  State
	logx.Logger

	// captures reported by our last move, owed back in YOUR_RESULT
	pendingCaptured int
	awaitingResult  bool

	// OnStep, if set, is called after every applied move with the placed
	// edge count and the board's edge total.
	OnStep func(step, total int)

	// Rec, if set, receives move and result records.
	Rec Recorder
}

// New builds a controller for a rows x cols game. seat is the handshake
// seating code and decides which side the engine plays.
func New(ctx context.Context, rows, cols int, seat int32, engine *assess.Engine) *Controller {
	me := chess.Player1
	if seat == gamesock.SitSecond {
		me = chess.Player2
	}

	return &Controller{
		game:   chess.NewGame(rows, cols),
		engine: engine,
		me:     me,
		state:  AwaitingOpponent,
		Logger: logx.WithContext(ctx),
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Game() *chess.Game {
	return c.game
}

// Run reads messages until the game ends. It never sends a move unless
// the last received code was PLEASE_PLAY, and it surfaces the first
// desync or transport error immediately.
func (c *Controller) Run(t Transport) (res Result, err error) {
	for {
		msg, err := t.ReadMessage()
		if err != nil {
			return res, err
		}

		switch msg.Code {
		case gamesock.PleasePlay:
			c.state = MustPlay
			if err := c.play(t); err != nil {
				return res, err
			}
			c.state = AwaitingOpponent

		case gamesock.YourResult:
			if err := c.confirmResult(msg.Points); err != nil {
				return res, err
			}

		case gamesock.OppResult:
			if err := c.applyOpponent(msg); err != nil {
				return res, err
			}

		case gamesock.GameOver:
			c.state = Over
			res = Result{Score1: int(msg.Score1), Score2: int(msg.Score2)}
			if res.Score1 != c.game.Player1Score || res.Score2 != c.game.Player2Score {
				c.Errorf("final scores %d-%d disagree with local tallies %d-%d",
					res.Score1, res.Score2, c.game.Player1Score, c.game.Player2Score)
			}
			if c.Rec != nil {
				c.Rec.RecordEnd(res.Score1, res.Score2)
			}
			return res, nil

		case gamesock.Closing:
			c.state = Closed
			c.Infof("server closing, local score %d-%d", c.game.Player1Score, c.game.Player2Score)
			return Result{
				Score1:      c.game.Player1Score,
				Score2:      c.game.Player2Score,
				ClosedEarly: true,
			}, nil

		default:
			return res, fmt.Errorf("message code %d: %w", msg.Code, ErrDesync)
		}
	}
}

func (c *Controller) play(t Transport) error {
	if c.game.NowPlayer != c.me {
		return fmt.Errorf("asked to play on %s's turn: %w", c.game.NowPlayer, ErrDesync)
	}

	m, ok := c.engine.BestMove(c.game.Board, c.me)
	if !ok {
		if m, ok = c.engine.FallbackMove(c.game.Board); !ok {
			return fmt.Errorf("asked to play on a finished board: %w", ErrDesync)
		}
	}

	captured, err := c.game.Add(m)
	if err != nil {
		return fmt.Errorf("engine move %v rejected: %w", m, err)
	}

	c.Infof("playing %v (captures %d)", m, captured)
	c.pendingCaptured = captured
	c.awaitingResult = true

	if err := t.SendMove(m); err != nil {
		return err
	}

	c.recordStep(m, c.me)
	return nil
}

func (c *Controller) confirmResult(points int32) error {
	if !c.awaitingResult {
		return fmt.Errorf("YOUR_RESULT with no move outstanding: %w", ErrDesync)
	}
	c.awaitingResult = false

	if points == gamesock.InvalidMove {
		return fmt.Errorf("server rejected our move: %w", ErrDesync)
	}

	if int(points) != c.pendingCaptured {
		return fmt.Errorf("server scored our move %d, local board says %d: %w",
			points, c.pendingCaptured, ErrDesync)
	}

	return nil
}

func (c *Controller) applyOpponent(msg gamesock.Message) error {
	if c.game.NowPlayer == c.me {
		return fmt.Errorf("opponent moved on our turn: %w", ErrDesync)
	}

	opponent := c.game.NowPlayer
	captured, err := c.game.Add(msg.Move)
	if err != nil {
		return fmt.Errorf("opponent move %v: %w", msg.Move, errors.Join(err, ErrDesync))
	}

	if int(msg.OppPoints) != captured {
		return fmt.Errorf("opponent move %v scored %d, local board says %d: %w",
			msg.Move, msg.OppPoints, captured, ErrDesync)
	}

	c.Infof("opponent played %v (captures %d)", msg.Move, captured)
	c.recordStep(msg.Move, opponent)
	return nil
}

func (c *Controller) recordStep(m chess.Move, player chess.Turn) {
	if c.OnStep != nil {
		c.OnStep(c.game.StepCount(), c.game.TotalEdges())
	}
	if c.Rec != nil {
		c.Rec.RecordMove(c.game.StepCount(), m, player, c.game.Player1Score, c.game.Player2Score)
	}
}
