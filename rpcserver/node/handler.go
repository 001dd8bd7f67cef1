package node

import (
	"net/http"

	"github.com/gin-gonic/gin"
	rpcwire "github.com/sat20-labs/txstage/rpcserver/wire"
)

// @Summary Node heights
// @Description Chain heights of the standard and committed nodes and whether they match
// @Tags txstage.node
// @Produce json
// @Success 200 {object} rpcwire.NodeHeightsResp "Successful response"
// @Router /nodes/heights [get]
func (s *Service) getHeights(c *gin.Context) {
	resp := &rpcwire.NodeHeightsResp{
		BaseResp: rpcwire.BaseResp{
			Code: 0,
			Msg:  "ok",
		},
		Data: s.tracker.NodeHeights(),
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Raw transaction
// @Description Hex encoded transaction from the standard node, falling back to the committed node
// @Tags txstage.node
// @Produce json
// @Param txid path string true "txid"
// @Success 200 {object} rpcwire.RawTxResp "Successful response"
// @Failure 400 {object} rpcwire.BaseResp "Invalid txid"
// @Failure 404 {object} rpcwire.BaseResp "Not found"
// @Router /tx/{txid}/raw [get]
func (s *Service) getRawTx(c *gin.Context) {
	resp := &rpcwire.RawTxResp{
		BaseResp: rpcwire.BaseResp{
			Code: 0,
			Msg:  "ok",
		},
	}
	raw, err := s.tracker.RawTx(c.Param("txid"))
	if err != nil {
		resp.Code = -1
		resp.Msg = err.Error()
		c.JSON(rpcwire.ErrorStatus(err), resp)
		return
	}
	resp.Data = raw
	c.JSON(http.StatusOK, resp)
}
