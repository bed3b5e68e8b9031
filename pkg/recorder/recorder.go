// Package recorder streams the bot's games out for later analysis:
// per-move JSON documents onto a per-game Redis list (batched), and
// start/move/end documents into per-game Mongo collections.
package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/env"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/chess"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/message"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/moverecord"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/pusher"
)

// list entries outlive the game long enough to be drained by a consumer
const listExpireSeconds = 3600

type MongoConf struct {
	Url          string `json:",optional"`
	DataBaseName string `json:",optional"`
	PassWord     string `json:",optional"`
}

type Config struct {
	Redis redis.RedisConf `json:",optional"`
	Mongo MongoConf       `json:",optional"`
}

// Enabled reports whether any backend is configured.
func (c Config) Enabled() bool {
	return c.Redis.Host != "" || c.Mongo.Url != ""
}

type Recorder struct {
	ctx     context.Context
	gameUid message.GameUid
	rds     *redis.Redis
	push    *pusher.Pusher[string]

	starts *moverecord.GameStartRecordModel
	moves  *moverecord.MoveRecordModel
	ends   *moverecord.GameEndRecordModel

	logx.Logger
}

// New wires the configured backends. Either half may be absent; with
// neither configured the returned recorder records nothing.
func New(ctx context.Context, c Config) *Recorder {
	r := &Recorder{
		ctx:     ctx,
		gameUid: message.NewGameUid(),
		Logger:  logx.WithContext(ctx),
	}

	if c.Redis.Host != "" {
		if c.Redis.Pass == "" {
			c.Redis.Pass = env.RedisPassWord
		}
		r.attachRedis(redis.MustNewRedis(c.Redis))
	}

	if c.Mongo.Url != "" {
		if c.Mongo.PassWord == "" {
			c.Mongo.PassWord = env.MongoPassWord
		}
		url := fmt.Sprintf(c.Mongo.Url, c.Mongo.PassWord)
		collection := string(r.gameUid)
		r.starts = moverecord.NewGameStartRecordModel(url, c.Mongo.DataBaseName, collection)
		r.moves = moverecord.NewMoveRecordModel(url, c.Mongo.DataBaseName, collection)
		r.ends = moverecord.NewGameEndRecordModel(url, c.Mongo.DataBaseName, collection)
	}

	return r
}

// NewWithRedis wraps an existing client. Used directly in tests.
func NewWithRedis(ctx context.Context, rds *redis.Redis) *Recorder {
	r := &Recorder{
		ctx:     ctx,
		gameUid: message.NewGameUid(),
		Logger:  logx.WithContext(ctx),
	}
	r.attachRedis(rds)
	return r
}

func (r *Recorder) attachRedis(rds *redis.Redis) {
	r.rds = rds
	r.push = pusher.NewPusher(pusher.WithPushLogic(func(pushMessages ...string) error {
		var messages []any
		for _, m := range pushMessages {
			messages = append(messages, m)
		}

		if _, err := r.rds.Lpush(r.gameUid.ListKey(), messages...); err != nil {
			return err
		}

		return r.rds.Expire(r.gameUid.ListKey(), listExpireSeconds)
	}))
	r.push.Start()
}

func (r *Recorder) GameUid() message.GameUid {
	return r.gameUid
}

func (r *Recorder) RecordStart(boardSize, botID, table, seat int) {
	r.Infof("recording game %s (size %d, seat %d)", r.gameUid, boardSize, seat)

	if r.starts == nil {
		return
	}

	record := &moverecord.GameStartRecord{
		GameUid:   r.gameUid,
		BoardSize: boardSize,
		BotID:     botID,
		Table:     table,
		Seat:      seat,
	}
	if err := r.starts.Insert(r.ctx, record); err != nil {
		r.Errorf("record game start: %v", err)
	}
}

// RecordMove satisfies bot.Recorder.
func (r *Recorder) RecordMove(step int, m chess.Move, player chess.Turn, score1, score2 int) {
	if r.push != nil {
		r.push.AddMessages(message.MoveMessage{
			TimeStamp:    message.NewTimeStamp(time.Now()),
			GameUid:      r.gameUid,
			Step:         step,
			Player:       player.String(),
			Move:         m.String(),
			Orient:       m.Orient,
			Row:          m.Row,
			Col:          m.Col,
			Player1Score: score1,
			Player2Score: score2,
		}.String())
	}

	if r.moves != nil {
		record := &moverecord.MoveRecord{
			StepCount:    step,
			Player1Score: score1,
			Player2Score: score2,
			NowPlayer:    player.String(),
			MoveEdge:     m.String(),
		}
		if err := r.moves.Insert(r.ctx, record); err != nil {
			r.Errorf("record move: %v", err)
		}
	}
}

// RecordEnd satisfies bot.Recorder and flushes the Redis buffer.
func (r *Recorder) RecordEnd(score1, score2 int) {
	if r.push != nil {
		r.push.Stop()
	}

	if r.ends == nil {
		return
	}

	var winner string
	switch {
	case score1 > score2:
		winner = chess.Player1.String()
	case score1 < score2:
		winner = chess.Player2.String()
	default:
		winner = "Draw"
	}

	record := &moverecord.GameEndRecord{
		Winner:       winner,
		Player1Score: score1,
		Player2Score: score2,
	}
	if err := r.ends.Insert(r.ctx, record); err != nil {
		r.Errorf("record game end: %v", err)
	}
}

// Flush pushes anything still buffered to Redis. Tests use it to avoid
// waiting out the push interval.
func (r *Recorder) Flush() error {
	if r.push == nil {
		return nil
	}
	return r.push.PushAll()
}
