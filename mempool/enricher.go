package mempool

import (
	"sort"
	"time"

	"github.com/sat20-labs/txstage/common"
	"github.com/sat20-labs/txstage/share/bitcoin_rpc"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency = 16

	workUnit = "TH"
)

// Enricher builds transaction records from both pool backends. Backend
// failures degrade the affected fields to zero values and never fail a batch.
type Enricher struct {
	standard    bitcoin_rpc.PoolQuery
	committed   bitcoin_rpc.PoolQuery
	classifier  *Classifier
	staging     StagingStore
	concurrency int
	now         func() int64
	logger      *logrus.Entry
}

func NewEnricher(standard, committed bitcoin_rpc.PoolQuery, classifier *Classifier,
	staging StagingStore, concurrency int) *Enricher {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Enricher{
		standard:    standard,
		committed:   committed,
		classifier:  classifier,
		staging:     staging,
		concurrency: concurrency,
		now:         func() int64 { return time.Now().Unix() },
		logger:      common.GetLoggerEntry("mempool"),
	}
}

// BuildTx returns the record for txid. found is false when neither pool has
// an entry for it, neither node could return its details and it was not
// reported as replaced.
func (p *Enricher) BuildTx(txid string) (record *TransactionRecord, found bool) {
	stdEntry := p.poolEntry(p.standard, txid)
	cmEntry := p.poolEntry(p.committed, txid)
	inStandard := stdEntry != nil
	inCommitted := cmEntry != nil

	detail := p.txDetail(txid)

	entry := stdEntry
	if entry == nil {
		entry = cmEntry
	}

	record = &TransactionRecord{Txid: txid, Hash: txid}
	if entry != nil {
		record.Size = entry.Vsize
		record.FeeSats = entry.FeeSats
		record.RBFSignaled = entry.BIP125Replaceable
	} else if detail != nil {
		record.Size = detail.Vsize
	}
	record.Fee = common.ToUnit(record.FeeSats)
	record.FeeRate = common.FeeRate(record.FeeSats, record.Size)

	if detail != nil {
		record.Confirmations = detail.Confirmations
		record.Inputs = detail.Inputs
		record.Outputs = detail.Outputs
		version, lockTime := detail.Version, detail.LockTime
		record.Version = &version
		record.LockTime = &lockTime
		if detail.Weight > 0 {
			weight := detail.Weight
			record.Weight = &weight
		}
	}
	if record.Weight == nil && record.Size > 0 {
		weight := record.Size * 4
		record.Weight = &weight
	}

	record.Category = p.classifier.Classify(txid, inStandard, inCommitted, record.Confirmations)

	record.Status.Confirmed = record.Confirmations > 0
	if detail != nil && detail.BlockHash != "" {
		hash := detail.BlockHash
		record.Status.BlockHash = &hash
		if detail.BlockTime > 0 {
			blockTime := detail.BlockTime
			record.Status.BlockTime = &blockTime
		}
		if height, ok := p.blockHeight(hash); ok {
			record.Status.BlockHeight = &height
		}
	}

	switch {
	case entry != nil && entry.Time > 0:
		record.Timestamp = entry.Time
	case record.Status.BlockTime != nil:
		record.Timestamp = *record.Status.BlockTime
	default:
		record.Timestamp = p.now()
	}

	if record.Confirmations == 0 && record.Size > 0 {
		work := record.FeeRate
		unit := workUnit
		record.Work = &work
		record.WorkUnit = &unit
	}

	record.Metadata = p.staging.Metadata(txid)

	return record, entry != nil || detail != nil || record.Category == CategoryReplaced
}

// EnrichAll builds records for ids with at most concurrency lookups in flight
// and returns them newest first, ties ordered by txid.
func (p *Enricher) EnrichAll(ids []string) []*TransactionRecord {
	records := make([]*TransactionRecord, len(ids))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, txid := range ids {
		g.Go(func() error {
			records[i], _ = p.BuildTx(txid)
			return nil
		})
	}
	g.Wait()

	SortRecords(records)
	return records
}

func SortRecords(records []*TransactionRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp > records[j].Timestamp
		}
		return records[i].Txid < records[j].Txid
	})
}

func (p *Enricher) poolEntry(pool bitcoin_rpc.PoolQuery, txid string) *bitcoin_rpc.PoolEntry {
	entry, err := pool.GetMemPoolEntry(txid)
	if err != nil {
		p.logger.Debugf("%s: getmempoolentry %s failed: %v", pool.Name(), txid, err)
		return nil
	}
	return entry
}

func (p *Enricher) txDetail(txid string) *bitcoin_rpc.TxDetail {
	for _, pool := range []bitcoin_rpc.PoolQuery{p.standard, p.committed} {
		detail, err := pool.GetTx(txid)
		if err == nil && detail != nil {
			return detail
		}
		p.logger.Debugf("%s: getrawtransaction %s failed: %v", pool.Name(), txid, err)
	}
	return nil
}

func (p *Enricher) blockHeight(blockHash string) (int64, bool) {
	for _, pool := range []bitcoin_rpc.PoolQuery{p.standard, p.committed} {
		height, err := pool.GetBlockHeight(blockHash)
		if err == nil {
			return height, true
		}
		p.logger.Debugf("%s: getblockheader %s failed: %v", pool.Name(), blockHash, err)
	}
	return 0, false
}
