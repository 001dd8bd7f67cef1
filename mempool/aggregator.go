package mempool

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/sat20-labs/txstage/common"
	"github.com/sat20-labs/txstage/share/bitcoin_rpc"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// UnionTxids merges the id lists of both pools into one sorted, duplicate
// free list.
func UnionTxids(lists ...[]string) []string {
	set := treeset.NewWithStringComparator()
	for _, ids := range lists {
		for _, id := range ids {
			set.Add(id)
		}
	}
	result := make([]string, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		result = append(result, it.Value().(string))
	}
	return result
}

// FeeHistogram accumulates virtual size per rounded fee rate bucket and
// returns [bucket, vsize] pairs in ascending bucket order. Entries with no
// virtual size are skipped.
func FeeHistogram(entries []*bitcoin_rpc.PoolEntry) [][2]float64 {
	buckets := treemap.NewWith(utils.UInt64Comparator)
	for _, e := range entries {
		if e == nil || e.Vsize <= 0 {
			continue
		}
		bucket := common.FeeRateBucket(common.FeeRate(e.FeeSats, e.Vsize))
		total := e.Vsize
		if v, ok := buckets.Get(bucket); ok {
			total += v.(int64)
		}
		buckets.Put(bucket, total)
	}

	result := make([][2]float64, 0, buckets.Size())
	it := buckets.Iterator()
	for it.Next() {
		result = append(result, [2]float64{float64(it.Key().(uint64)), float64(it.Value().(int64))})
	}
	return result
}

// Aggregate folds the pool entries of ids into mempool totals. Count is the
// number of ids; ids without an entry contribute no size or fee.
func Aggregate(ids []string, entries map[string]*bitcoin_rpc.PoolEntry) *MempoolInfo {
	info := &MempoolInfo{Count: len(ids)}
	found := make([]*bitcoin_rpc.PoolEntry, 0, len(entries))
	for _, id := range ids {
		e, ok := entries[id]
		if !ok || e == nil {
			continue
		}
		info.Vsize += e.Vsize
		info.TotalFee += e.FeeSats
		found = append(found, e)
	}
	info.FeeHistogram = FeeHistogram(found)
	return info
}

// Aggregator computes mempool wide statistics over the union of both pools.
type Aggregator struct {
	standard    bitcoin_rpc.PoolQuery
	committed   bitcoin_rpc.PoolQuery
	staging     StagingStore
	concurrency int
	logger      *logrus.Entry
}

func NewAggregator(standard, committed bitcoin_rpc.PoolQuery, staging StagingStore, concurrency int) *Aggregator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Aggregator{
		standard:    standard,
		committed:   committed,
		staging:     staging,
		concurrency: concurrency,
		logger:      common.GetLoggerEntry("mempool"),
	}
}

// PooledTxids lists the union of both pools. A pool that cannot be listed
// contributes nothing.
func (p *Aggregator) PooledTxids() (all, standard, committed []string) {
	standard = p.listPool(p.standard)
	committed = p.listPool(p.committed)
	return UnionTxids(standard, committed), standard, committed
}

func (p *Aggregator) listPool(pool bitcoin_rpc.PoolQuery) []string {
	ids, err := pool.GetMemPool()
	if err != nil {
		p.logger.Warnf("%s: getrawmempool failed: %v", pool.Name(), err)
		return nil
	}
	return ids
}

func (p *Aggregator) MempoolInfo() *MempoolInfo {
	ids, _, _ := p.PooledTxids()
	lookups := p.fetchEntries(ids)
	entries := make(map[string]*bitcoin_rpc.PoolEntry, len(lookups))
	for id, l := range lookups {
		if l.entry() != nil {
			entries[id] = l.entry()
		}
	}
	return Aggregate(ids, entries)
}

// DashboardStats splits the pooled transactions into scheduled, proposed and
// mempool buckets. Committed pool presence always counts as scheduled here,
// whatever the classification policy. Ids with no entry in either pool are
// skipped.
func (p *Aggregator) DashboardStats() *DashboardStats {
	ids, _, _ := p.PooledTxids()
	lookups := p.fetchEntries(ids)

	stats := &DashboardStats{}
	for _, id := range ids {
		l := lookups[id]
		e := l.entry()
		if e == nil {
			continue
		}
		fee := common.ToUnit(e.FeeSats)
		stage := p.staging.Stage(id)
		switch {
		case l.committed != nil || stage == StageScheduled:
			stats.ScheduledCount++
			stats.TotalScheduledFee += fee
		case stage == StageProposed:
			stats.ProposedCount++
			stats.TotalProposedFee += fee
		default:
			stats.MempoolCount++
			stats.TotalMempoolFee += fee
		}
	}
	return stats
}

type entryLookup struct {
	standard  *bitcoin_rpc.PoolEntry
	committed *bitcoin_rpc.PoolEntry
}

func (l entryLookup) entry() *bitcoin_rpc.PoolEntry {
	if l.standard != nil {
		return l.standard
	}
	return l.committed
}

func (p *Aggregator) fetchEntries(ids []string) map[string]entryLookup {
	lookups := make([]entryLookup, len(ids))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			if e, err := p.standard.GetMemPoolEntry(id); err == nil {
				lookups[i].standard = e
			}
			if e, err := p.committed.GetMemPoolEntry(id); err == nil {
				lookups[i].committed = e
			}
			return nil
		})
	}
	g.Wait()

	result := make(map[string]entryLookup, len(ids))
	for i, id := range ids {
		result[id] = lookups[i]
	}
	return result
}
