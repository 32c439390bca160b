package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)
	return router
}

// Start serves the profiling handlers on addr in the background. A failure to
// listen is logged and does not stop the game.
func Start(addr string) {
	threading.GoSafe(func() {
		logx.Infof("pprof listening on http://%s/debug/pprof/", addr)
		if err := NewRouter().Run(addr); err != nil {
			logx.Errorf("pprof server on %s: %v", addr, err)
		}
	})
}
