package wire

import "github.com/sat20-labs/txstage/mempool"

type BaseResp struct {
	Code int    `json:"code" example:"0"`
	Msg  string `json:"msg" example:"ok"`
}

type HealthStatusResp struct {
	Status    string                   `json:"status" example:"ok"`
	Version   string                   `json:"version" example:"0.3.0"`
	Heights   *mempool.NodeHeights     `json:"heights"`
	Seen      int                      `json:"seen"`
	Proposed  int                      `json:"proposed"`
	Scheduled int                      `json:"scheduled"`
	Reconcile *mempool.ReconcileReport `json:"reconcile"`
	Ephemeral bool                     `json:"ephemeral_state" example:"true"`
}

type NodeHeightsResp struct {
	BaseResp
	Data *mempool.NodeHeights `json:"data"`
}

type RawTxResp struct {
	BaseResp
	Data string `json:"data"`
}
