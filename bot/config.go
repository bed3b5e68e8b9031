package main

import (
	"flag"

	"github.com/zeromicro/go-zero/core/conf"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/model"
	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/recorder"
)

type Config struct {
	Server    string `json:",default=localhost:80"`
	BotID     int    `json:",default=1700"`
	Table     int    `json:",default=17"`
	PassWord  int    `json:",default=1751"`
	Opponent  int    `json:",default=0"`
	BoardSize int    `json:",default=4"`
	Depth     int    `json:",default=4"`

	Record recorder.Config `json:",optional"`
}

var (
	configFile = flag.String("f", "etc/bot.yaml", "the config file")
	serverConf = flag.String("h", "", "game server address (overrides config)")
	depthConf  = flag.Int("depth", 0, "search depth in plies (overrides config)")
	sizeConf   = flag.Int("size", 0, "board size in boxes per side (overrides config)")
	barConf    = flag.String("bar", "on", "show the progress bar")

	c   Config
	bar model.Config
)

func initConfig() {
	flag.Parse()
	conf.MustLoad(*configFile, &c)
	bar = model.NewConfig(*barConf)

	if *serverConf != "" {
		c.Server = *serverConf
	}
	if *depthConf > 0 {
		c.Depth = *depthConf
	}
	if *sizeConf > 0 {
		c.BoardSize = *sizeConf
	}
}
