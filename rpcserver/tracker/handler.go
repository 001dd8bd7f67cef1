package tracker

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sat20-labs/txstage/mempool"
	rpcwire "github.com/sat20-labs/txstage/rpcserver/wire"
)

// @Summary List transactions
// @Description All transactions of the standard and committed pools, newest first. Filter with ?category=
// @Tags txstage
// @Produce json
// @Param category query string false "Mempool, Proposed, Scheduled, Committed, Confirmed, Replaced or Unknown"
// @Success 200 {object} rpcwire.TxListResp "Successful response"
// @Failure 400 {object} rpcwire.BaseResp "Invalid category"
// @Router /transactions [get]
func (s *Service) getTransactions(c *gin.Context) {
	resp := &rpcwire.TxListResp{
		BaseResp: rpcwire.BaseResp{
			Code: 0,
			Msg:  "ok",
		},
	}

	var records []*mempool.TransactionRecord
	if name := c.Query("category"); name != "" {
		category, ok := mempool.ParseCategory(name)
		if !ok {
			resp.Code = -1
			resp.Msg = "unknown category " + name
			c.JSON(http.StatusBadRequest, resp)
			return
		}
		records = s.tracker.ListByCategory(category)
	} else {
		records = s.tracker.ListTransactions()
	}

	resp.Total = len(records)
	resp.Data = records
	c.JSON(http.StatusOK, resp)
}

// @Summary Transaction detail
// @Description Classified record of one transaction, looked up in both pools and both nodes
// @Tags txstage
// @Produce json
// @Param txid path string true "txid"
// @Success 200 {object} rpcwire.TxResp "Successful response"
// @Failure 400 {object} rpcwire.BaseResp "Invalid txid"
// @Failure 404 {object} rpcwire.BaseResp "Not found"
// @Router /tx/{txid} [get]
func (s *Service) getTransaction(c *gin.Context) {
	resp := &rpcwire.TxResp{
		BaseResp: rpcwire.BaseResp{
			Code: 0,
			Msg:  "ok",
		},
	}
	record, err := s.tracker.GetTransaction(c.Param("txid"))
	if err != nil {
		resp.Code = -1
		resp.Msg = err.Error()
		c.JSON(rpcwire.ErrorStatus(err), resp)
		return
	}
	resp.Data = record
	c.JSON(http.StatusOK, resp)
}

// @Summary Mempool info
// @Description Count, virtual size, total fee (sats) and fee rate histogram over the union of both pools
// @Tags txstage
// @Produce json
// @Success 200 {object} rpcwire.MempoolInfoResp "Successful response"
// @Router /mempool/info [get]
func (s *Service) getMempoolInfo(c *gin.Context) {
	resp := &rpcwire.MempoolInfoResp{
		BaseResp: rpcwire.BaseResp{
			Code: 0,
			Msg:  "ok",
		},
		Data: s.tracker.MempoolInfo(),
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Propose a transaction
// @Description Mark a standard pool transaction as proposed
// @Tags txstage.staging
// @Accept json
// @Produce json
// @Param txid path string true "txid"
// @Param body body rpcwire.ProposeReq false "optional notes"
// @Success 200 {object} rpcwire.StagingActionResp "Successful response"
// @Failure 400 {object} rpcwire.BaseResp "Invalid txid or already scheduled"
// @Failure 404 {object} rpcwire.BaseResp "Not in mempool"
// @Router /transactions/{txid}/propose [post]
func (s *Service) propose(c *gin.Context) {
	var req rpcwire.ProposeReq
	// the body is optional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, &rpcwire.BaseResp{Code: -1, Msg: err.Error()})
		return
	}
	s.stagingAction(c, "transaction proposed", func(txid string) error {
		return s.tracker.Propose(txid, req.Notes)
	})
}

// @Summary Schedule a transaction
// @Description Submit a proposed transaction to the committed pool. When the committed pool rejects it, data carries both chain heights and a hint
// @Tags txstage.staging
// @Produce json
// @Param txid path string true "txid"
// @Success 200 {object} rpcwire.StagingActionResp "Successful response"
// @Failure 400 {object} rpcwire.ScheduleErrResp "Not proposed or rejected by the committed pool"
// @Failure 404 {object} rpcwire.BaseResp "Raw transaction not found"
// @Router /transactions/{txid}/schedule [post]
func (s *Service) schedule(c *gin.Context) {
	s.stagingAction(c, "transaction scheduled", s.tracker.Schedule)
}

// @Summary Reject a proposed transaction
// @Tags txstage.staging
// @Produce json
// @Param txid path string true "txid"
// @Success 200 {object} rpcwire.StagingActionResp "Successful response"
// @Failure 404 {object} rpcwire.BaseResp "Not proposed"
// @Router /transactions/{txid}/reject [post]
func (s *Service) reject(c *gin.Context) {
	s.stagingAction(c, "transaction rejected", s.tracker.Reject)
}

// @Summary Unschedule a transaction
// @Description Drop the local scheduled mark. The transaction is not removed from the committed pool
// @Tags txstage.staging
// @Produce json
// @Param txid path string true "txid"
// @Success 200 {object} rpcwire.StagingActionResp "Successful response"
// @Failure 404 {object} rpcwire.BaseResp "Not scheduled"
// @Router /transactions/{txid}/unschedule [post]
func (s *Service) unschedule(c *gin.Context) {
	s.stagingAction(c, "transaction unscheduled", s.tracker.Unschedule)
}

// @Summary Commit a transaction
// @Description Push a standard pool transaction into the committed pool without any staging change
// @Tags txstage.staging
// @Produce json
// @Param txid path string true "txid"
// @Success 200 {object} rpcwire.StagingActionResp "Successful response"
// @Failure 400 {object} rpcwire.ScheduleErrResp "Rejected by the committed pool"
// @Router /transactions/{txid}/commit [post]
func (s *Service) commit(c *gin.Context) {
	s.stagingAction(c, "transaction committed", func(txid string) error {
		_, err := s.tracker.Commit(txid)
		return err
	})
}

func (s *Service) stagingAction(c *gin.Context, message string, op func(string) error) {
	txid := c.Param("txid")
	if err := op(txid); err != nil {
		status := rpcwire.ErrorStatus(err)
		if diag := mempool.DiagnosticsOf(err); diag != nil {
			c.JSON(status, &rpcwire.ScheduleErrResp{
				BaseResp: rpcwire.BaseResp{Code: -1, Msg: err.Error()},
				Data:     diag,
			})
			return
		}
		c.JSON(status, &rpcwire.BaseResp{Code: -1, Msg: err.Error()})
		return
	}

	resp := &rpcwire.StagingActionResp{
		BaseResp: rpcwire.BaseResp{
			Code: 0,
			Msg:  "ok",
		},
		Data: &rpcwire.StagingAction{Txid: txid, Message: message},
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Propose transactions in bulk
// @Description Each id is processed independently. Failures are listed with their reason
// @Tags txstage.staging
// @Accept json
// @Produce json
// @Param body body rpcwire.BulkReq true "ids"
// @Success 200 {object} rpcwire.BulkResp "Successful response"
// @Router /transactions/bulk/propose [post]
func (s *Service) bulkPropose(c *gin.Context) {
	s.bulk(c, s.tracker.BulkPropose)
}

// @Summary Schedule transactions in bulk
// @Tags txstage.staging
// @Accept json
// @Produce json
// @Param body body rpcwire.BulkReq true "ids"
// @Success 200 {object} rpcwire.BulkResp "Successful response"
// @Router /transactions/bulk/schedule [post]
func (s *Service) bulkSchedule(c *gin.Context) {
	s.bulk(c, s.tracker.BulkSchedule)
}

func (s *Service) bulk(c *gin.Context, op func([]string) *mempool.BulkResult) {
	resp := &rpcwire.BulkResp{
		BaseResp: rpcwire.BaseResp{
			Code: 0,
			Msg:  "ok",
		},
	}
	var req rpcwire.BulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Code = -1
		resp.Msg = err.Error()
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	resp.Data = op(req.All())
	c.JSON(http.StatusOK, resp)
}

// @Summary Proposed txids
// @Tags txstage.staging
// @Produce json
// @Success 200 {object} rpcwire.TxidListResp "Successful response"
// @Router /staging/proposed [get]
func (s *Service) getProposed(c *gin.Context) {
	txidList(c, s.tracker.ProposedTxids())
}

// @Summary Scheduled txids
// @Description Only transactions scheduled through this service since it started
// @Tags txstage.staging
// @Produce json
// @Success 200 {object} rpcwire.TxidListResp "Successful response"
// @Router /staging/scheduled [get]
func (s *Service) getScheduled(c *gin.Context) {
	txidList(c, s.tracker.ScheduledTxids())
}

func txidList(c *gin.Context, ids []string) {
	resp := &rpcwire.TxidListResp{
		BaseResp: rpcwire.BaseResp{
			Code: 0,
			Msg:  "ok",
		},
		Total: len(ids),
		Data:  ids,
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Dashboard stats
// @Description Counts and BTC fee totals of the mempool, proposed and scheduled buckets. confirmed_count is always 0
// @Tags txstage.dashboard
// @Produce json
// @Success 200 {object} rpcwire.DashboardStatsResp "Successful response"
// @Router /dashboard/stats [get]
func (s *Service) getDashboardStats(c *gin.Context) {
	resp := &rpcwire.DashboardStatsResp{
		BaseResp: rpcwire.BaseResp{
			Code: 0,
			Msg:  "ok",
		},
		Data: s.tracker.DashboardStats(),
	}
	c.JSON(http.StatusOK, resp)
}

// byCategory serves /dashboard/mempool, /dashboard/proposed and /dashboard/scheduled.
func (s *Service) byCategory(category mempool.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		records := s.tracker.ListByCategory(category)
		resp := &rpcwire.TxListResp{
			BaseResp: rpcwire.BaseResp{
				Code: 0,
				Msg:  "ok",
			},
			Total: len(records),
			Data:  records,
		}
		c.JSON(http.StatusOK, resp)
	}
}
