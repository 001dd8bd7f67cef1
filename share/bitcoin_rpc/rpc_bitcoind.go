package bitcoin_rpc

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
	"github.com/sat20-labs/txstage/common"
)

// mempoolEntryResult mirrors bitcoind's getmempoolentry reply. btcjson's
// typed result has no bip125-replaceable field, so the call goes through
// RawRequest.
type mempoolEntryResult struct {
	Vsize  int64   `json:"vsize"`
	Weight int64   `json:"weight"`
	Fee    float64 `json:"fee"`
	Time   int64   `json:"time"`
	Height int64   `json:"height"`
	Fees   *struct {
		Base float64 `json:"base"`
	} `json:"fees"`
	BIP125Replaceable bool `json:"bip125-replaceable"`
}

func (r *mempoolEntryResult) toPoolEntry() *PoolEntry {
	fee := r.Fee
	if r.Fees != nil {
		fee = r.Fees.Base
	}
	vsize := r.Vsize
	if vsize == 0 && r.Weight > 0 {
		vsize = (r.Weight + 3) / 4
	}
	return &PoolEntry{
		Vsize:             vsize,
		FeeSats:           common.ToSats(fee),
		Time:              r.Time,
		BIP125Replaceable: r.BIP125Replaceable,
	}
}

type BitcoindRPC struct {
	name   string
	client *rpcclient.Client
}

func NewBitcoindRPC(name, host string, port int, user, passwd string, useSSL bool) (*BitcoindRPC, error) {
	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         fmt.Sprintf("%s:%d", host, port),
		User:         user,
		Pass:         passwd,
		HTTPPostMode: true,
		DisableTLS:   !useSSL,
	}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "connect %s node %s:%d", name, host, port)
	}
	return &BitcoindRPC{
		name:   name,
		client: client,
	}, nil
}

func (p *BitcoindRPC) Name() string {
	return p.name
}

func (p *BitcoindRPC) Shutdown() {
	p.client.Shutdown()
}

func (p *BitcoindRPC) GetMemPool() ([]string, error) {
	hashes, err := p.client.GetRawMempool()
	if err != nil {
		return nil, err
	}
	txIds := make([]string, 0, len(hashes))
	for _, h := range hashes {
		txIds = append(txIds, h.String())
	}
	return txIds, nil
}

func (p *BitcoindRPC) GetMemPoolEntry(txid string) (*PoolEntry, error) {
	param, err := json.Marshal(txid)
	if err != nil {
		return nil, err
	}
	raw, err := p.client.RawRequest("getmempoolentry", []json.RawMessage{param})
	if err != nil {
		return nil, err
	}
	return decodeMempoolEntry(raw)
}

func decodeMempoolEntry(raw json.RawMessage) (*PoolEntry, error) {
	var result mempoolEntryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrap(err, "decode getmempoolentry")
	}
	return result.toPoolEntry(), nil
}

func (p *BitcoindRPC) GetTx(txid string) (*TxDetail, error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, err
	}
	res, err := p.client.GetRawTransactionVerbose(hash)
	if err != nil {
		return nil, err
	}
	detail := &TxDetail{
		Txid:          res.Txid,
		Confirmations: res.Confirmations,
		BlockHash:     res.BlockHash,
		BlockTime:     res.Blocktime,
		Vsize:         int64(res.Vsize),
		Weight:        int64(res.Weight),
		Inputs:        len(res.Vin),
		Outputs:       len(res.Vout),
		Version:       int32(res.Version),
		LockTime:      uint32(res.LockTime),
	}
	// older nodes omit vsize
	if detail.Vsize == 0 {
		if tx, err := DecodeRawTx(res.Hex); err == nil {
			detail.Vsize = common.VirtualSize(tx)
		}
	}
	return detail, nil
}

func (p *BitcoindRPC) GetRawTx(txid string) (string, error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return "", err
	}
	tx, err := p.client.GetRawTransaction(hash)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tx.MsgTx().Serialize(&buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

func (p *BitcoindRPC) SendTx(signedTxHex string) (string, error) {
	tx, err := DecodeRawTx(signedTxHex)
	if err != nil {
		return "", err
	}
	hash, err := p.client.SendRawTransaction(tx, false)
	if err != nil {
		return "", err
	}
	return strings.Trim(hash.String(), "\""), nil
}

func (p *BitcoindRPC) GetBlockCount() (int64, error) {
	return p.client.GetBlockCount()
}

func (p *BitcoindRPC) GetBlockHeight(blockHash string) (int64, error) {
	hash, err := chainhash.NewHashFromStr(blockHash)
	if err != nil {
		return 0, err
	}
	header, err := p.client.GetBlockHeaderVerbose(hash)
	if err != nil {
		return 0, err
	}
	return int64(header.Height), nil
}

// DecodeRawTx parses a hex encoded serialized transaction.
func DecodeRawTx(txHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, errors.Wrap(err, "decode raw tx hex")
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, errors.Wrap(err, "deserialize raw tx")
	}
	return tx, nil
}
