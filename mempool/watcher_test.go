package mempool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepTouchesAndClears(t *testing.T) {
	env := newTestEnv(Options{})
	pooled, confirmed, vanished := txid("01"), txid("02"), txid("03")
	env.standard.addEntry(pooled, 100, 100, 1)
	env.standard.addEntry(confirmed, 100, 100, 1)
	env.standard.addEntry(vanished, 100, 100, 1)
	for _, id := range []string{pooled, confirmed, vanished} {
		require.NoError(t, env.tracker.Propose(id, nil))
	}

	env.standard.confirm(confirmed, "block", 10, 5, 100)
	env.standard.drop(vanished)

	stats := env.tracker.Sweep()
	assert.Equal(t, 1, stats.Pooled)
	assert.Equal(t, 1, stats.Confirmed)

	_, ok := env.seen.LastSeen(pooled)
	assert.True(t, ok)
	assert.True(t, env.staging.IsProposed(pooled))
	assert.Equal(t, StageNone, env.staging.Stage(confirmed))
	assert.True(t, env.staging.IsProposed(vanished))
}

func TestSweepKeepsReplacedForReaders(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("01")
	env.standard.addEntry(id, 100, 100, 1)
	env.tracker.Sweep()

	env.standard.drop(id)
	env.tracker.Sweep()

	record, found := env.tracker.enricher.BuildTx(id)
	assert.True(t, found)
	assert.Equal(t, CategoryReplaced, record.Category)
}

func TestSweepForgetsConfirmed(t *testing.T) {
	env := newTestEnv(Options{})
	ids := []string{txid("11"), txid("12"), txid("13")}
	for i, id := range ids {
		env.standard.addEntry(id, 100, 100, int64(i))
	}
	env.tracker.Sweep()
	assert.Equal(t, 3, env.seen.Len())

	for _, id := range ids {
		env.standard.confirm(id, "block", 10, 5, 100)
	}
	stats := env.tracker.Sweep()
	assert.Equal(t, 0, stats.Pooled)
	assert.Equal(t, 3, stats.Forgotten)
	env.tracker.Sweep()
	assert.Equal(t, 0, env.seen.Len())
}

func TestSweepKeepsUnconfirmedAbsent(t *testing.T) {
	env := newTestEnv(Options{})
	gone, mined := txid("21"), txid("22")
	env.standard.addEntry(gone, 100, 100, 1)
	env.standard.addEntry(mined, 100, 100, 1)
	env.tracker.Sweep()

	env.standard.drop(gone)
	env.standard.confirm(mined, "block", 10, 5, 100)
	stats := env.tracker.Sweep()
	assert.Equal(t, 1, stats.Forgotten)

	_, ok := env.seen.LastSeen(gone)
	assert.True(t, ok)
	_, ok = env.seen.LastSeen(mined)
	assert.False(t, ok)
}

func TestWatcherStartStop(t *testing.T) {
	env := newTestEnv(Options{})
	env.standard.addEntry(txid("01"), 100, 100, 1)

	w := NewWatcher(env.tracker, time.Hour)
	w.Start()
	assert.Eventually(t, func() bool { return env.seen.Len() == 1 }, time.Second, 5*time.Millisecond)
	w.Stop()
	w.Stop()
}
