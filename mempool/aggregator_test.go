package mempool

import (
	"errors"
	"testing"

	"github.com/sat20-labs/txstage/share/bitcoin_rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionTxids(t *testing.T) {
	ids := UnionTxids([]string{"tx1", "tx2", "tx3"}, []string{"tx2", "tx3", "tx4"})
	assert.Equal(t, []string{"tx1", "tx2", "tx3", "tx4"}, ids)
	assert.Empty(t, UnionTxids(nil, nil))
}

func TestFeeHistogram(t *testing.T) {
	entries := []*bitcoin_rpc.PoolEntry{
		{Vsize: 250, FeeSats: 2500},
		{Vsize: 180, FeeSats: 1800},
		{Vsize: 300, FeeSats: 3000},
		{Vsize: 100, FeeSats: 1070},
		{Vsize: 100, FeeSats: 520},
		{Vsize: 0, FeeSats: 999},
		nil,
	}
	hist := FeeHistogram(entries)
	assert.Equal(t, [][2]float64{{5, 100}, {10, 730}, {11, 100}}, hist)
}

func TestAggregate(t *testing.T) {
	ids := []string{"tx1", "tx2", "tx3", "tx4"}
	entries := map[string]*bitcoin_rpc.PoolEntry{
		"tx1": {Vsize: 250, FeeSats: 1000},
		"tx2": {Vsize: 100, FeeSats: 500},
		"tx4": {Vsize: 0, FeeSats: 7},
	}
	info := Aggregate(ids, entries)
	assert.Equal(t, 4, info.Count)
	assert.Equal(t, int64(350), info.Vsize)
	assert.Equal(t, int64(1507), info.TotalFee)
	assert.Equal(t, [][2]float64{{4, 250}, {5, 100}}, info.FeeHistogram)
}

func TestAggregatorMempoolInfo(t *testing.T) {
	env := newTestEnv(Options{})
	for _, id := range []string{"tx1", "tx2", "tx3"} {
		env.standard.addEntry(id, 100, 1000, 1)
	}
	for _, id := range []string{"tx2", "tx3", "tx4"} {
		env.committed.addEntry(id, 100, 1000, 1)
	}

	info := env.tracker.MempoolInfo()
	assert.Equal(t, 4, info.Count)
	assert.Equal(t, int64(400), info.Vsize)
	assert.Equal(t, int64(4000), info.TotalFee)
	assert.Equal(t, [][2]float64{{10, 400}}, info.FeeHistogram)
}

func TestAggregatorListFailure(t *testing.T) {
	env := newTestEnv(Options{})
	env.standard.addEntry("tx1", 100, 1000, 1)
	env.committed.addEntry("tx2", 100, 1000, 1)
	env.committed.listErr = errors.New("connection refused")

	info := env.tracker.MempoolInfo()
	assert.Equal(t, 1, info.Count)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(Options{DistinguishCommitted: true})
	env.standard.addEntry("m", 100, 10000, 1)
	env.standard.addEntry("p", 100, 20000, 1)
	env.standard.addEntry("s", 100, 30000, 1)
	env.standard.addEntry("both", 100, 40000, 1)
	env.committed.addEntry("both", 100, 40000, 1)
	env.committed.addEntry("c", 100, 50000, 1)

	require.NoError(t, env.staging.Propose("p", nil))
	require.NoError(t, env.staging.Propose("s", nil))
	require.NoError(t, env.staging.Schedule("s"))
	require.NoError(t, env.staging.Propose("both", nil))

	stats := env.tracker.DashboardStats()
	assert.Equal(t, 1, stats.MempoolCount)
	assert.Equal(t, 1, stats.ProposedCount)
	assert.Equal(t, 3, stats.ScheduledCount)
	assert.Equal(t, 0, stats.ConfirmedCount)
	assert.InDelta(t, 0.0001, stats.TotalMempoolFee, 1e-12)
	assert.InDelta(t, 0.0002, stats.TotalProposedFee, 1e-12)
	assert.InDelta(t, 0.0012, stats.TotalScheduledFee, 1e-12)
}
