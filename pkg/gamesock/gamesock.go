// Package gamesock speaks the game server's synchronous wire protocol:
// fixed-width big-endian int32 fields, a 5-int handshake, then one
// code-prefixed message per turn event.
package gamesock

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/chess"
)

// Handshake seat codes.
const (
	ComFail   int32 = -3
	Invalid   int32 = -2
	NoSit     int32 = -1
	SitFirst  int32 = 1
	SitSecond int32 = 2
)

// In-game message codes.
const (
	Closing    int32 = -1
	PleasePlay int32 = 0
	YourResult int32 = 1
	OppResult  int32 = 2
	GameOver   int32 = 3
)

// InvalidMove is the YOUR_RESULT sentinel for a rejected move.
const InvalidMove int32 = -1

// Opponent selection codes for the handshake.
const (
	OppAny             int32 = 0
	OppRandomBotFirst  int32 = -1
	OppRandomBotSecond int32 = -2
	OppRivestBotSecond int32 = -3
)

// RejectionError is an application-level refusal during the handshake:
// the server declined the seat and supplied a human-readable reason.
// The connection is unusable afterwards.
type RejectionError struct {
	Code    int32
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("server refused seat (code %d): %s", e.Code, e.Message)
}

// Message is one decoded server-to-client message. Only the fields for
// the given Code are meaningful.
type Message struct {
	Code      int32
	Points    int32      // YourResult
	Move      chess.Move // OppResult
	OppPoints int32      // OppResult
	Score1    int32      // GameOver
	Score2    int32      // GameOver
}

type GameSocket struct {
	conn net.Conn
}

// Dial opens a TCP connection to the game server. A failure here is a
// transport failure, never an application rejection.
func Dial(addr string) (*GameSocket, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("gamesock: dial %s: %w", addr, err)
	}
	return NewGameSocket(conn), nil
}

// NewGameSocket wraps an established connection. Used directly in tests.
func NewGameSocket(conn net.Conn) *GameSocket {
	return &GameSocket{conn: conn}
}

// Handshake requests a seat: 5 ints out, 1 seat code back. SitFirst and
// SitSecond leave the session ready for ReadMessage/SendMove. A negative
// seat code other than ComFail is followed by a length-prefixed UTF-8
// reason from the server, returned as a *RejectionError. I/O failures
// return seat ComFail.
func (s *GameSocket) Handshake(id, table, pw, oppType, size int32) (seat int32, err error) {
	for _, v := range []int32{id, table, pw, oppType, size} {
		if err = s.writeInt(v); err != nil {
			return ComFail, fmt.Errorf("gamesock: handshake write: %w", err)
		}
	}

	if seat, err = s.readInt(); err != nil {
		return ComFail, fmt.Errorf("gamesock: handshake read: %w", err)
	}

	switch {
	case seat == SitFirst || seat == SitSecond:
		return seat, nil
	case seat < 0:
		msg, readErr := s.readUTF()
		s.Close()
		if readErr != nil {
			return ComFail, fmt.Errorf("gamesock: read rejection reason: %w", readErr)
		}
		return seat, &RejectionError{Code: seat, Message: msg}
	default:
		s.Close()
		return ComFail, fmt.Errorf("gamesock: unexpected handshake answer %d", seat)
	}
}

// ReadMessage blocks for the next server message and decodes its
// code-dependent payload.
func (s *GameSocket) ReadMessage() (msg Message, err error) {
	if msg.Code, err = s.readInt(); err != nil {
		return msg, fmt.Errorf("gamesock: read message code: %w", err)
	}

	switch msg.Code {
	case Closing, PleasePlay:

	case YourResult:
		if msg.Points, err = s.readInt(); err != nil {
			return msg, fmt.Errorf("gamesock: read result: %w", err)
		}

	case OppResult:
		var horv, row, col int32
		for _, p := range []*int32{&horv, &row, &col, &msg.OppPoints} {
			if *p, err = s.readInt(); err != nil {
				return msg, fmt.Errorf("gamesock: read opponent move: %w", err)
			}
		}
		msg.Move = chess.Move{Orient: chess.Orientation(horv), Row: int(row), Col: int(col)}

	case GameOver:
		if msg.Score1, err = s.readInt(); err != nil {
			return msg, fmt.Errorf("gamesock: read final score: %w", err)
		}
		if msg.Score2, err = s.readInt(); err != nil {
			return msg, fmt.Errorf("gamesock: read final score: %w", err)
		}

	default:
		return msg, fmt.Errorf("gamesock: unknown message code %d", msg.Code)
	}

	return msg, nil
}

// SendMove transmits a move as orientation, row, column.
func (s *GameSocket) SendMove(m chess.Move) error {
	for _, v := range []int32{int32(m.Orient), int32(m.Row), int32(m.Col)} {
		if err := s.writeInt(v); err != nil {
			return fmt.Errorf("gamesock: send move: %w", err)
		}
	}
	return nil
}

func (s *GameSocket) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *GameSocket) readInt() (v int32, err error) {
	err = binary.Read(s.conn, binary.BigEndian, &v)
	return
}

func (s *GameSocket) writeInt(v int32) error {
	return binary.Write(s.conn, binary.BigEndian, v)
}

// readUTF reads a Java DataOutputStream.writeUTF string: a big-endian
// uint16 byte length followed by that many bytes.
func (s *GameSocket) readUTF() (string, error) {
	var length uint16
	if err := binary.Read(s.conn, binary.BigEndian, &length); err != nil {
		return "", err
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(s.conn, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}
