package wire

import "github.com/sat20-labs/txstage/mempool"

type TxListResp struct {
	BaseResp
	Total int                          `json:"total" example:"2"`
	Data  []*mempool.TransactionRecord `json:"data"`
}

type TxResp struct {
	BaseResp
	Data *mempool.TransactionRecord `json:"data"`
}

type MempoolInfoResp struct {
	BaseResp
	Data *mempool.MempoolInfo `json:"data"`
}

type DashboardStatsResp struct {
	BaseResp
	Data *mempool.DashboardStats `json:"data"`
}

type ProposeReq struct {
	Notes *string `json:"notes"`
}

// BulkReq accepts the id list under either key.
type BulkReq struct {
	Txids []string `json:"txids"`
	Ids   []string `json:"ids"`
}

func (r *BulkReq) All() []string {
	return append(append([]string{}, r.Txids...), r.Ids...)
}

type BulkResp struct {
	BaseResp
	Data *mempool.BulkResult `json:"data"`
}

type StagingAction struct {
	Txid    string `json:"txid"`
	Message string `json:"message"`
}

type StagingActionResp struct {
	BaseResp
	Data *StagingAction `json:"data"`
}

// ScheduleErrResp carries the submit diagnostics when the committed pool
// rejects a transaction.
type ScheduleErrResp struct {
	BaseResp
	Data *mempool.SubmitDiagnostics `json:"data"`
}

type TxidListResp struct {
	BaseResp
	Total int      `json:"total"`
	Data  []string `json:"data"`
}
