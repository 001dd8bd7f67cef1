package bitcoin_rpc

// PoolEntry is the subset of a node's getmempoolentry result the tracker uses.
type PoolEntry struct {
	Vsize             int64 `json:"vsize"`
	FeeSats           int64 `json:"fee"`
	Time              int64 `json:"time"`
	BIP125Replaceable bool  `json:"bip125_replaceable"`
}

// TxDetail is a verbose getrawtransaction result.
type TxDetail struct {
	Txid          string `json:"txid"`
	Confirmations uint64 `json:"confirmations"`
	BlockHash     string `json:"blockhash,omitempty"`
	BlockTime     int64  `json:"blocktime,omitempty"`
	Vsize         int64  `json:"vsize"`
	Weight        int64  `json:"weight"`
	Inputs        int    `json:"inputs"`
	Outputs       int    `json:"outputs"`
	Version       int32  `json:"version"`
	LockTime      uint32 `json:"locktime"`
}

// PoolQuery is one transaction pool backend. There are two of them: the
// standard node and the committed node. Every call may fail independently;
// callers on read paths treat a failure as "unknown".
type PoolQuery interface {
	Name() string

	GetMemPool() (txIds []string, err error)
	GetMemPoolEntry(txid string) (*PoolEntry, error)

	GetTx(txid string) (*TxDetail, error)
	GetRawTx(txid string) (string, error)
	SendTx(signedTxHex string) (string, error)

	GetBlockCount() (int64, error)
	GetBlockHeight(blockHash string) (int64, error)
}
