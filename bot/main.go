package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/assess"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/bot"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/gamesock"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/model"
	_ "github.com/Joe-Spurrell/DotsAndBoxes/pkg/pprof"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/recorder"
)

func main() {
	initConfig()

	sock, err := gamesock.Dial(c.Server)
	logx.Must(err)
	defer sock.Close()

	seat, err := sock.Handshake(int32(c.BotID), int32(c.Table), int32(c.PassWord),
		int32(c.Opponent), int32(c.BoardSize))
	logx.Must(err)
	logx.Infof("seated as player %d on table %d", seat, c.Table)

	ctx := context.Background()
	engine := assess.NewEngine(c.Depth, rand.New(rand.NewSource(time.Now().UnixNano())))
	controller := bot.New(ctx, c.BoardSize, c.BoardSize, seat, engine)

	if c.Record.Enabled() {
		rec := recorder.New(ctx, c.Record)
		rec.RecordStart(c.BoardSize, c.BotID, c.Table, int(seat))
		controller.Rec = rec
	}

	var progress *model.Bar
	if bar == model.On {
		progress = model.NewBar(controller.Game().TotalEdges(), "Playing...")
		controller.OnStep = func(step, total int) {
			progress.Goto(step)
		}
	}

	result, err := controller.Run(sock)
	if progress != nil {
		progress.Close()
	}
	logx.Must(err)

	fmt.Println()
	fmt.Println(controller.Game().Board.String())
	announce(result, seat)
}

func announce(res bot.Result, seat int32) {
	if res.ClosedEarly {
		fmt.Println(aurora.Yellow("server closed the game early"))
	}

	fmt.Printf("Final score: %d - %d\n", res.Score1, res.Score2)

	mine, theirs := res.Score1, res.Score2
	if seat == gamesock.SitSecond {
		mine, theirs = theirs, mine
	}

	switch {
	case mine > theirs:
		fmt.Println(aurora.Green("We win"))
	case mine < theirs:
		fmt.Println(aurora.Red("We lose"))
	default:
		fmt.Println(aurora.Yellow("Draw"))
	}
}
