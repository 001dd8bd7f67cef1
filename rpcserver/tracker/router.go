package tracker

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
	// views over both pools
	r.GET(basePath+"/transactions", s.getTransactions)
	r.GET(basePath+"/tx/:txid", s.getTransaction)
	r.GET(basePath+"/mempool/info", s.getMempoolInfo)

	// staging
	r.POST(basePath+"/transactions/:txid/propose", s.propose)
	r.POST(basePath+"/transactions/:txid/schedule", s.schedule)
	r.POST(basePath+"/transactions/:txid/reject", s.reject)
	r.POST(basePath+"/transactions/:txid/unschedule", s.unschedule)
	r.POST(basePath+"/transactions/:txid/commit", s.commit)
	r.POST(basePath+"/transactions/bulk/propose", s.bulkPropose)
	r.POST(basePath+"/transactions/bulk/schedule", s.bulkSchedule)
	r.GET(basePath+"/staging/proposed", s.getProposed)
	r.GET(basePath+"/staging/scheduled", s.getScheduled)

	// dashboard
	r.GET(basePath+"/dashboard/stats", s.getDashboardStats)
	r.GET(basePath+"/dashboard/mempool", s.byCategory(mempool.CategoryMempool))
	r.GET(basePath+"/dashboard/proposed", s.byCategory(mempool.CategoryProposed))
	r.GET(basePath+"/dashboard/scheduled", s.byCategory(mempool.CategoryScheduled))
}
