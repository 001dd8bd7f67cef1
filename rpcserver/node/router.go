package node

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
	// chain heights of both nodes
	r.GET(basePath+"/nodes/heights", s.getHeights)
	// raw transaction hex, standard node first
	r.GET(basePath+"/tx/:txid/raw", s.getRawTx)
}
