package base

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sat20-labs/txstage/common"
	"github.com/sat20-labs/txstage/rpcserver/wire"
)

// @Summary Health Check
// @Description Node heights, staging counts and the startup reconciliation report. Staging state is in memory only and lost on restart
// @Tags txstage
// @Produce json
// @Success 200 {object} wire.HealthStatusResp "Successful response"
// @Success 201 {object} wire.HealthStatusResp "Nodes out of sync or unreachable"
// @Router /health [get]
func (s *Service) getHealth(c *gin.Context) {
	heights := s.tracker.NodeHeights()
	rsp := &wire.HealthStatusResp{
		Status:    "ok",
		Version:   common.TXSTAGE_VERSION,
		Heights:   heights,
		Seen:      s.tracker.Seen().Len(),
		Proposed:  len(s.tracker.ProposedTxids()),
		Scheduled: len(s.tracker.ScheduledTxids()),
		Reconcile: s.tracker.LastReconcile(),
		Ephemeral: true,
	}

	code := http.StatusOK
	if !heights.Synced {
		code = http.StatusCreated
		rsp.Status = "unsynced"
	}

	c.JSON(code, rsp)
}
