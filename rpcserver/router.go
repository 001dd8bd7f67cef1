package rpcserver

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sat20-labs/txstage/common"
	"github.com/sat20-labs/txstage/config"
	"github.com/sat20-labs/txstage/mempool"
	"github.com/sat20-labs/txstage/rpcserver/base"
	"github.com/sat20-labs/txstage/rpcserver/node"
	"github.com/sat20-labs/txstage/rpcserver/tracker"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	STRICT_TRANSPORT_SECURITY   = "strict-transport-security"
	CACHE_CONTROL               = "cache-control"
	VARY                        = "vary"
	ACCESS_CONTROL_ALLOW_ORIGIN = "access-control-allow-origin"
	CONTENT_ENCODING            = "content-encoding"
)

type Rpc struct {
	basicService   *base.Service
	trackerService *tracker.Service
	nodeService    *node.Service
	apidoc         *APIDoc
	server         *http.Server
}

func NewRpc(t *mempool.Tracker) *Rpc {
	return &Rpc{
		basicService:   base.NewService(t),
		trackerService: tracker.NewService(t),
		nodeService:    node.NewService(t),
		apidoc:         &APIDoc{},
	}
}

// NewEngine builds the gin engine with every middleware and route.
func (s *Rpc) NewEngine(swaggerHost, swaggerSchemes, rpcProxy string, apiConf *config.API) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	corsConfig.OptionsResponseStatusCode = 200
	r.Use(cors.New(corsConfig))

	basePath := rpcProxy
	if basePath == "/" {
		basePath = ""
	}

	// doc
	InitApiDoc(swaggerHost, swaggerSchemes, rpcProxy)
	r.GET(basePath+"/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// rate limit
	if apiConf != nil {
		if err := s.apidoc.InitApiConf(apiConf); err != nil {
			return nil, err
		}
	}
	if err := s.apidoc.ApplyApiConf(r, basePath); err != nil {
		return nil, err
	}

	// common header
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set(VARY, "Origin")
		c.Writer.Header().Add(VARY, "Access-Control-Request-Method")
		c.Writer.Header().Add(VARY, "Access-Control-Request-Headers")
		c.Writer.Header().Set(CACHE_CONTROL, "no-store")
		c.Writer.Header().Set(
			STRICT_TRANSPORT_SECURITY,
			"max-age=31536000; includeSubDomains; preload",
		)
		c.Writer.Header().Set(ACCESS_CONTROL_ALLOW_ORIGIN, "*")
		c.Next()
	})

	r.Use(CompressionMiddleware())

	// router
	s.basicService.InitRouter(r, basePath)
	s.trackerService.InitRouter(r, basePath)
	s.nodeService.InitRouter(r, basePath)
	return r, nil
}

func (s *Rpc) Start(rpcUrl, swaggerHost, swaggerSchemes, rpcProxy, rpcLogPath string, apiConf *config.API) error {
	gin.SetMode(gin.ReleaseMode)
	writers := []io.Writer{os.Stdout}
	if rpcLogPath != "" {
		fileHook, err := config.NewRotateWriter(rpcLogPath, ".rpc", 7*24*time.Hour)
		if err != nil {
			return err
		}
		writers = append(writers, fileHook)
	}
	gin.DefaultWriter = io.MultiWriter(writers...)

	r, err := s.NewEngine(swaggerHost, swaggerSchemes, rpcProxy, apiConf)
	if err != nil {
		return err
	}

	if _, _, err := net.SplitHostPort(rpcUrl); err != nil {
		rpcUrl += ":80"
	}
	// fail early when the port is taken
	l, err := net.Listen("tcp", rpcUrl)
	if err != nil {
		return fmt.Errorf("listen %s failed: %v", rpcUrl, err)
	}

	s.server = &http.Server{Handler: r}
	go func() {
		if err := s.server.Serve(l); err != nil && err != http.ErrServerClosed {
			common.Log.Errorf("rpc server stopped: %v", err)
		}
	}()
	return nil
}

func (s *Rpc) Stop() {
	if s.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		common.Log.Warnf("rpc server shutdown: %v", err)
	}
}
