// Package pprof exposes profiling endpoints on a random localhost port.
// Import for side effects from the binaries.
package pprof

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func run() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	pprof.Register(router)
	addr := fmt.Sprintf("localhost:%d", rand.New(rand.NewSource(time.Now().UnixNano())).Intn(0xffff))
	logx.Infof("pprof listening on %s", addr)
	if err := router.Run(addr); err != nil {
		run()
	}
	time.Sleep(time.Second)
}

func init() {
	go run()
}
