package mempool

// TxStatus is the confirmation block of a transaction record.
type TxStatus struct {
	Confirmed   bool    `json:"confirmed"`
	BlockHeight *int64  `json:"block_height"`
	BlockHash   *string `json:"block_hash"`
	BlockTime   *int64  `json:"block_time"`
}

// TransactionRecord is built fresh on every request and never cached.
type TransactionRecord struct {
	Txid          string           `json:"txid"`
	Hash          string           `json:"hash"`
	Category      Category         `json:"category"`
	Size          int64            `json:"size"`
	Weight        *int64           `json:"weight"`
	Fee           float64          `json:"fee"` // BTC
	FeeSats       int64            `json:"fee_sats"`
	FeeRate       float64          `json:"fee_rate"` // sat/vB
	Inputs        int              `json:"inputs"`
	Outputs       int              `json:"outputs"`
	Confirmations uint64           `json:"confirmations"`
	Version       *int32           `json:"version,omitempty"`
	LockTime      *uint32          `json:"locktime,omitempty"`
	Work          *float64         `json:"work"`
	WorkUnit      *string          `json:"work_unit"`
	Timestamp     int64            `json:"timestamp"`
	RBFSignaled   bool             `json:"rbf_signaled"`
	Status        TxStatus         `json:"status"`
	Metadata      *StagingMetadata `json:"metadata"`
}

type MempoolInfo struct {
	Count        int          `json:"count"`
	Vsize        int64        `json:"vsize"`
	TotalFee     int64        `json:"total_fee"`
	FeeHistogram [][2]float64 `json:"fee_histogram"`
}

// DashboardStats counts the pooled transactions per staging bucket. Fees are
// in BTC. ConfirmedCount is always zero: recent confirmations are not tracked.
type DashboardStats struct {
	MempoolCount      int     `json:"mempool_count"`
	ProposedCount     int     `json:"proposed_count"`
	ScheduledCount    int     `json:"scheduled_count"`
	ConfirmedCount    int     `json:"confirmed_count"`
	TotalMempoolFee   float64 `json:"total_mempool_fee"`
	TotalProposedFee  float64 `json:"total_proposed_fee"`
	TotalScheduledFee float64 `json:"total_scheduled_fee"`
}

type BulkFailure struct {
	Txid  string `json:"txid"`
	Error string `json:"error"`
}

type BulkResult struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

func newBulkResult() *BulkResult {
	return &BulkResult{Succeeded: make([]string, 0), Failed: make([]BulkFailure, 0)}
}

// ReconcileReport lists committed-pool transactions that have no local
// staging entry. They classify as Scheduled by inference only.
type ReconcileReport struct {
	At              int64    `json:"at"`
	CommittedCount  int      `json:"committed_count"`
	Untracked       []string `json:"untracked"`
	CommittedFailed string   `json:"committed_error,omitempty"`
}

type NodeHeights struct {
	Standard       int64  `json:"standard_height"`
	Committed      int64  `json:"committed_height"`
	Synced         bool   `json:"synced"`
	StandardError  string `json:"standard_error,omitempty"`
	CommittedError string `json:"committed_error,omitempty"`
}
