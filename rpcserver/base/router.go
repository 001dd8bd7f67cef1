package base

import (
	"github.com/gin-gonic/gin"
	"github.com/sat20-labs/txstage/mempool"
)

type Service struct {
	tracker *mempool.Tracker
}

func NewService(t *mempool.Tracker) *Service {
	return &Service{
		tracker: t,
	}
}

func (s *Service) InitRouter(r *gin.Engine, basePath string) {
	// 心跳
	r.GET(basePath+"/health", s.getHealth)
}
