package common

import (
	"fmt"
	"math"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	ChainTestnet  = "testnet"
	ChainTestnet4 = "testnet4"
	ChainMainnet  = "mainnet"
	ChainRegtest  = "regtest"
)

// TxidLength is the length of a hex encoded transaction id.
const TxidLength = chainhash.MaxHashStringSize

// ParseTxid checks that txid is a 64 character hex string and returns it in
// canonical (lower case) form.
func ParseTxid(txid string) (string, error) {
	txid = strings.TrimSpace(txid)
	if len(txid) != TxidLength {
		return "", fmt.Errorf("invalid txid %q: expected %d hex characters, got %d", txid, TxidLength, len(txid))
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return "", fmt.Errorf("invalid txid %q: %v", txid, err)
	}
	return hash.String(), nil
}

// ToUnit converts an amount in satoshis to BTC.
func ToUnit(sats int64) float64 {
	return btcutil.Amount(sats).ToBTC()
}

// ToSats converts a BTC amount reported by a node to satoshis.
func ToSats(btc float64) int64 {
	amount, err := btcutil.NewAmount(btc)
	if err != nil {
		return 0
	}
	return int64(amount)
}

// FeeRate returns the fee rate in sat/vB, 0 when vsize is not positive.
func FeeRate(feeSats, vsize int64) float64 {
	if vsize <= 0 {
		return 0
	}
	return float64(feeSats) / float64(vsize)
}

// FeeRateBucket rounds a fee rate half away from zero into an integer bucket.
func FeeRateBucket(feeRate float64) uint64 {
	if feeRate <= 0 || math.IsNaN(feeRate) {
		return 0
	}
	return uint64(math.Round(feeRate))
}

// VirtualSize computes the BIP141 virtual size of tx.
func VirtualSize(tx *wire.MsgTx) int64 {
	baseSize := int64(tx.SerializeSizeStripped())
	totalSize := int64(tx.SerializeSize())
	weight := baseSize*3 + totalSize
	return (weight + 3) / 4
}
