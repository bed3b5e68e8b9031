package gamesock

import (
	"encoding/binary"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/chess"
)

func pipeSocket(t *testing.T, server func(conn net.Conn)) *GameSocket {
	t.Helper()

	clientConn, serverConn := net.Pipe()
	t.Cleanup(func() {
		clientConn.Close()
		serverConn.Close()
	})

	go server(serverConn)
	return NewGameSocket(clientConn)
}

func readInts(t *testing.T, conn net.Conn, n int) []int32 {
	t.Helper()

	out := make([]int32, n)
	for i := range out {
		require.NoError(t, binary.Read(conn, binary.BigEndian, &out[i]))
	}
	return out
}

func writeInts(t *testing.T, conn net.Conn, vs ...int32) {
	t.Helper()

	for _, v := range vs {
		require.NoError(t, binary.Write(conn, binary.BigEndian, v))
	}
}

func TestHandshakeSeated(t *testing.T) {
	sock := pipeSocket(t, func(conn net.Conn) {
		assert.Equal(t, []int32{1700, 17, 1751, OppAny, 4}, readInts(t, conn, 5))
		writeInts(t, conn, SitFirst)

		// seated sessions go straight into game messages
		writeInts(t, conn, PleasePlay)
	})

	seat, err := sock.Handshake(1700, 17, 1751, OppAny, 4)
	require.NoError(t, err)
	assert.Equal(t, SitFirst, seat)

	msg, err := sock.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, PleasePlay, msg.Code)
}

func TestHandshakeRejectedWithMessage(t *testing.T) {
	const reason = "table 17 already has two players"

	sock := pipeSocket(t, func(conn net.Conn) {
		readInts(t, conn, 5)
		writeInts(t, conn, NoSit)
		require.NoError(t, binary.Write(conn, binary.BigEndian, uint16(len(reason))))
		_, err := conn.Write([]byte(reason))
		require.NoError(t, err)
	})

	seat, err := sock.Handshake(1700, 17, 1751, OppAny, 4)
	assert.Equal(t, NoSit, seat)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, NoSit, rejection.Code)
	assert.Equal(t, reason, rejection.Message)
}

func TestHandshakeTransportFailure(t *testing.T) {
	sock := pipeSocket(t, func(conn net.Conn) {
		readInts(t, conn, 5)
		conn.Close()
	})

	seat, err := sock.Handshake(1700, 17, 1751, OppAny, 4)
	assert.Equal(t, ComFail, seat)
	require.Error(t, err)

	var rejection *RejectionError
	assert.False(t, errors.As(err, &rejection), "a dropped connection is not a rejection")
}

func TestReadMessagePayloads(t *testing.T) {
	sock := pipeSocket(t, func(conn net.Conn) {
		writeInts(t, conn, YourResult, 2)
		writeInts(t, conn, OppResult, 1, 2, 3, 1)
		writeInts(t, conn, GameOver, 9, 7)
		writeInts(t, conn, Closing)
	})

	msg, err := sock.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, YourResult, msg.Code)
	assert.Equal(t, int32(2), msg.Points)

	msg, err = sock.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, OppResult, msg.Code)
	assert.Equal(t, chess.Move{Orient: chess.Vertical, Row: 2, Col: 3}, msg.Move)
	assert.Equal(t, int32(1), msg.OppPoints)

	msg, err = sock.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, GameOver, msg.Code)
	assert.Equal(t, int32(9), msg.Score1)
	assert.Equal(t, int32(7), msg.Score2)

	msg, err = sock.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, Closing, msg.Code)
}

func TestReadMessageUnknownCode(t *testing.T) {
	sock := pipeSocket(t, func(conn net.Conn) {
		writeInts(t, conn, 42)
	})

	_, err := sock.ReadMessage()
	require.Error(t, err)
}

func TestSendMove(t *testing.T) {
	done := make(chan []int32, 1)
	sock := pipeSocket(t, func(conn net.Conn) {
		done <- readInts(t, conn, 3)
	})

	require.NoError(t, sock.SendMove(chess.Move{Orient: chess.Horizontal, Row: 4, Col: 2}))
	assert.Equal(t, []int32{0, 4, 2}, <-done)
}
