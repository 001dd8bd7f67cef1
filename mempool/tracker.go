package mempool

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sat20-labs/txstage/common"
	"github.com/sat20-labs/txstage/share/bitcoin_rpc"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// Concurrency bounds the pool lookups in flight during a batch.
	Concurrency int
	// DistinguishCommitted reports committed pool presence as Committed
	// instead of Scheduled when no staging stage is recorded.
	DistinguishCommitted bool
}

// Tracker is the entry point used by the HTTP layer. It owns the seen
// registry and the staging store for the lifetime of the process.
type Tracker struct {
	standard   bitcoin_rpc.PoolQuery
	committed  bitcoin_rpc.PoolQuery
	seen       SeenRegistry
	staging    StagingStore
	classifier *Classifier
	enricher   *Enricher
	aggregator *Aggregator
	now        func() int64
	logger     *logrus.Entry

	mutex         sync.RWMutex
	lastReconcile *ReconcileReport
}

func NewTracker(standard, committed bitcoin_rpc.PoolQuery, opts Options) *Tracker {
	seen := NewSeenRegistry()
	return NewTrackerWithStores(standard, committed, seen, NewStagingStore(seen), opts)
}

// NewTrackerWithStores lets callers supply isolated stores.
func NewTrackerWithStores(standard, committed bitcoin_rpc.PoolQuery, seen SeenRegistry,
	staging StagingStore, opts Options) *Tracker {
	return newTracker(standard, committed, seen, staging, opts,
		func() int64 { return time.Now().Unix() })
}

func newTracker(standard, committed bitcoin_rpc.PoolQuery, seen SeenRegistry,
	staging StagingStore, opts Options, now func() int64) *Tracker {
	classifier := NewClassifier(staging, seen, opts.DistinguishCommitted)
	classifier.now = now
	enricher := NewEnricher(standard, committed, classifier, staging, opts.Concurrency)
	enricher.now = now
	return &Tracker{
		standard:   standard,
		committed:  committed,
		seen:       seen,
		staging:    staging,
		classifier: classifier,
		enricher:   enricher,
		aggregator: NewAggregator(standard, committed, staging, opts.Concurrency),
		now:        now,
		logger:     common.GetLoggerEntry("mempool"),
	}
}

func (p *Tracker) Classifier() *Classifier { return p.classifier }
func (p *Tracker) Staging() StagingStore   { return p.staging }
func (p *Tracker) Seen() SeenRegistry      { return p.seen }

// ListTransactions returns every transaction in either pool, newest first.
func (p *Tracker) ListTransactions() []*TransactionRecord {
	ids, _, _ := p.aggregator.PooledTxids()
	return p.enricher.EnrichAll(ids)
}

func (p *Tracker) ListByCategory(category Category) []*TransactionRecord {
	result := make([]*TransactionRecord, 0)
	for _, record := range p.ListTransactions() {
		if record.Category == category {
			result = append(result, record)
		}
	}
	return result
}

func (p *Tracker) GetTransaction(txid string) (*TransactionRecord, error) {
	id, err := common.ParseTxid(txid)
	if err != nil {
		return nil, invalidTxid(txid, err)
	}
	record, found := p.enricher.BuildTx(id)
	if !found {
		return nil, notFound(id, "transaction not found in either pool or node")
	}
	return record, nil
}

func (p *Tracker) MempoolInfo() *MempoolInfo {
	return p.aggregator.MempoolInfo()
}

func (p *Tracker) DashboardStats() *DashboardStats {
	return p.aggregator.DashboardStats()
}

// Propose marks a transaction of the standard pool as proposed.
func (p *Tracker) Propose(txid string, notes *string) error {
	id, err := common.ParseTxid(txid)
	if err != nil {
		return invalidTxid(txid, err)
	}
	if _, err := p.standard.GetMemPoolEntry(id); err != nil {
		return notFound(id, "transaction not found in mempool")
	}
	if err := p.staging.Propose(id, notes); err != nil {
		return err
	}
	p.logger.Infof("%s proposed", id)
	return nil
}

// Schedule submits a proposed transaction to the committed pool and marks it
// scheduled. A transaction already in the committed pool is only marked.
func (p *Tracker) Schedule(txid string) error {
	id, err := common.ParseTxid(txid)
	if err != nil {
		return invalidTxid(txid, err)
	}
	if !p.staging.IsProposed(id) {
		return stateConflict(id, "transaction must be proposed before scheduling")
	}

	if _, err := p.committed.GetMemPoolEntry(id); err == nil {
		if err := p.staging.Schedule(id); err != nil {
			return err
		}
		p.logger.Infof("%s already in committed pool, scheduled", id)
		return nil
	}

	if _, err := p.submit(id); err != nil {
		return err
	}
	if err := p.staging.Schedule(id); err != nil {
		// the committed pool already holds it; readers will infer Scheduled
		p.logger.Warnf("%s submitted to committed pool but not marked scheduled: %v", id, err)
		return newTxError(StateConflict, id,
			"submitted to committed pool, but staging changed before it could be marked scheduled", err)
	}
	p.logger.Infof("%s scheduled", id)
	return nil
}

// Commit pushes a transaction of the standard pool into the committed pool
// without touching its staging entry.
func (p *Tracker) Commit(txid string) (string, error) {
	id, err := common.ParseTxid(txid)
	if err != nil {
		return "", invalidTxid(txid, err)
	}
	return p.submit(id)
}

func (p *Tracker) submit(id string) (string, error) {
	raw, err := p.standard.GetRawTx(id)
	if err != nil {
		return "", newTxError(NotFoundError, id, "transaction not found", err)
	}

	heights := p.NodeHeights()
	result, err := p.committed.SendTx(raw)
	if err != nil {
		diag := newSubmitDiagnostics(err, heights.Standard, heights.Committed)
		p.logger.WithFields(logrus.Fields{
			"kind":             diag.Kind,
			"standard_height":  diag.StandardHeight,
			"committed_height": diag.CommittedHeight,
		}).Warnf("%s rejected by committed pool: %v", id, err)
		return "", backendFailure(id, "committed pool rejected transaction", err, diag)
	}
	return result, nil
}

func (p *Tracker) Reject(txid string) error {
	id, err := common.ParseTxid(txid)
	if err != nil {
		return invalidTxid(txid, err)
	}
	if err := p.staging.Reject(id); err != nil {
		return err
	}
	p.logger.Infof("%s rejected", id)
	return nil
}

// Unschedule only drops the local bookkeeping. The transaction stays in the
// committed pool.
func (p *Tracker) Unschedule(txid string) error {
	id, err := common.ParseTxid(txid)
	if err != nil {
		return invalidTxid(txid, err)
	}
	if err := p.staging.Unschedule(id); err != nil {
		return err
	}
	p.logger.Infof("%s unscheduled", id)
	return nil
}

func (p *Tracker) BulkPropose(txids []string) *BulkResult {
	return p.bulk(txids, func(txid string) error { return p.Propose(txid, nil) })
}

func (p *Tracker) BulkSchedule(txids []string) *BulkResult {
	return p.bulk(txids, p.Schedule)
}

func (p *Tracker) bulk(txids []string, op func(string) error) *BulkResult {
	result := newBulkResult()
	for _, txid := range txids {
		if err := op(txid); err != nil {
			result.Failed = append(result.Failed, BulkFailure{Txid: txid, Error: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, txid)
	}
	return result
}

func (p *Tracker) ProposedTxids() []string {
	return p.staging.Proposed()
}

func (p *Tracker) ScheduledTxids() []string {
	return p.staging.Scheduled()
}

// Reconcile lists the committed pool and reports the transactions that have
// no staging entry, such as those scheduled before a restart. They are only
// reported: classification already infers them as Scheduled.
func (p *Tracker) Reconcile() *ReconcileReport {
	report := &ReconcileReport{At: p.now(), Untracked: make([]string, 0)}
	ids, err := p.committed.GetMemPool()
	if err != nil {
		report.CommittedFailed = err.Error()
		p.logger.Warnf("reconcile: can't list committed pool: %v", err)
	} else {
		report.CommittedCount = len(ids)
		for _, id := range UnionTxids(ids) {
			if p.staging.Stage(id) == StageNone {
				report.Untracked = append(report.Untracked, id)
			}
		}
		if len(report.Untracked) > 0 {
			p.logger.Warnf("reconcile: %d of %d committed pool transactions have no staging record, "+
				"staging state is not persisted across restarts", len(report.Untracked), len(ids))
		}
	}

	p.mutex.Lock()
	p.lastReconcile = report
	p.mutex.Unlock()
	return report
}

func (p *Tracker) LastReconcile() *ReconcileReport {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.lastReconcile
}

func (p *Tracker) NodeHeights() *NodeHeights {
	result := &NodeHeights{}
	var err error
	if result.Standard, err = p.standard.GetBlockCount(); err != nil {
		result.StandardError = err.Error()
	}
	if result.Committed, err = p.committed.GetBlockCount(); err != nil {
		result.CommittedError = err.Error()
	}
	result.Synced = result.StandardError == "" && result.CommittedError == "" &&
		result.Standard == result.Committed
	return result
}

// RawTx returns the hex encoded transaction from the standard node, or from
// the committed node when the standard one does not know it.
func (p *Tracker) RawTx(txid string) (string, error) {
	id, err := common.ParseTxid(txid)
	if err != nil {
		return "", invalidTxid(txid, err)
	}
	var lastErr error
	for _, pool := range []bitcoin_rpc.PoolQuery{p.standard, p.committed} {
		raw, err := pool.GetRawTx(id)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return "", newTxError(NotFoundError, id, "transaction not found", errors.Cause(lastErr))
}
