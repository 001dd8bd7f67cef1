package mempool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeScheduleConfirm(t *testing.T) {
	env := newTestEnv(Options{})
	x := txid("f00d")
	env.standard.addEntry(x, 250, 1000, 1699999999)
	notes := "test"

	require.NoError(t, env.tracker.Propose(x, &notes))
	require.NoError(t, env.tracker.Schedule(x))
	assert.Equal(t, []string{x}, env.committed.sent)
	assert.True(t, env.staging.IsScheduled(x))

	c := env.tracker.Classifier()
	assert.Equal(t, CategoryScheduled, c.Classify(x, true, false, 0))
	_, seen := env.seen.LastSeen(x)
	assert.True(t, seen)

	env.standard.confirm(x, "block", 820000, 1700000100, 250)
	env.committed.drop(x)

	record, err := env.tracker.GetTransaction(x)
	require.NoError(t, err)
	assert.Equal(t, CategoryConfirmed, record.Category)
	assert.Nil(t, record.Metadata)
	assert.False(t, env.staging.IsProposed(x))
	assert.False(t, env.staging.IsScheduled(x))
	_, seen = env.seen.LastSeen(x)
	assert.False(t, seen)
}

func TestTrackerInvalidTxid(t *testing.T) {
	env := newTestEnv(Options{})
	for _, bad := range []string{"", "xyz", txid("g1"), txid("ab") + "00"} {
		_, err := env.tracker.GetTransaction(bad)
		assert.True(t, IsKind(err, InputError), bad)
		assert.True(t, IsKind(env.tracker.Propose(bad, nil), InputError))
		assert.True(t, IsKind(env.tracker.Schedule(bad), InputError))
		assert.True(t, IsKind(env.tracker.Reject(bad), InputError))
		assert.True(t, IsKind(env.tracker.Unschedule(bad), InputError))
		_, err = env.tracker.RawTx(bad)
		assert.True(t, IsKind(err, InputError))
	}
}

func TestTrackerTxidCaseInsensitive(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("ab")
	env.standard.addEntry(id, 100, 100, 1)
	require.NoError(t, env.tracker.Propose(txid("AB"), nil))
	assert.True(t, env.staging.IsProposed(id))
}

func TestTrackerGetTransactionNotFound(t *testing.T) {
	env := newTestEnv(Options{})
	_, err := env.tracker.GetTransaction(txid("01"))
	assert.True(t, IsKind(err, NotFoundError))
}

func TestTrackerProposeNotInMempool(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("01")
	env.committed.addEntry(id, 100, 100, 1)
	assert.True(t, IsKind(env.tracker.Propose(id, nil), NotFoundError))
	assert.Equal(t, StageNone, env.staging.Stage(id))
}

func TestTrackerScheduleRequiresProposed(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("01")
	env.standard.addEntry(id, 100, 100, 1)

	err := env.tracker.Schedule(id)
	assert.True(t, IsKind(err, StateConflict))
	assert.Empty(t, env.committed.sent)
}

func TestTrackerScheduleAlreadyCommitted(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("01")
	env.standard.addEntry(id, 100, 100, 1)
	env.committed.addEntry(id, 100, 100, 1)

	require.NoError(t, env.tracker.Propose(id, nil))
	require.NoError(t, env.tracker.Schedule(id))
	assert.Empty(t, env.committed.sent)
	assert.True(t, env.staging.IsScheduled(id))
}

func TestTrackerScheduleDiagnostics(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("01")
	env.standard.addEntry(id, 100, 100, 1)
	env.standard.height = 820005
	env.committed.height = 820001
	env.committed.sendErr = errors.New("-25: bad-txns-inputs-missingorspent")

	require.NoError(t, env.tracker.Propose(id, nil))
	err := env.tracker.Schedule(id)
	require.Error(t, err)
	assert.True(t, IsKind(err, BackendError))

	diag := DiagnosticsOf(err)
	require.NotNil(t, diag)
	assert.Equal(t, DiagnosticInputsMissing, diag.Kind)
	assert.Equal(t, int64(820005), diag.StandardHeight)
	assert.Equal(t, int64(820001), diag.CommittedHeight)
	assert.Equal(t, "Nodes not synchronized. Check block heights match.", diag.Hint)
	assert.Equal(t, "Blockchain state mismatch", diag.PossibleCause)

	assert.True(t, env.staging.IsProposed(id))
}

func TestTrackerScheduleRejectedWhileSubmitting(t *testing.T) {
	env := newTestEnv(Options{})
	x := txid("5ab")
	env.standard.addEntry(x, 250, 1000, 1)
	require.NoError(t, env.tracker.Propose(x, nil))
	env.committed.onSend = func(id string) {
		require.NoError(t, env.staging.Reject(id))
	}

	err := env.tracker.Schedule(x)
	require.Error(t, err)
	assert.True(t, IsKind(err, StateConflict))
	assert.Contains(t, err.Error(), "submitted to committed pool")
	assert.Equal(t, []string{x}, env.committed.sent)
	assert.Equal(t, StageNone, env.staging.Stage(x))
}

func TestTrackerScheduleRawMissing(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("01")
	env.standard.addEntry(id, 100, 100, 1)
	require.NoError(t, env.tracker.Propose(id, nil))
	delete(env.standard.raw, id)

	assert.True(t, IsKind(env.tracker.Schedule(id), NotFoundError))
	assert.True(t, env.staging.IsProposed(id))
}

func TestTrackerRejectUnschedule(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("01")
	env.standard.addEntry(id, 100, 100, 1)

	assert.True(t, IsKind(env.tracker.Reject(id), NotFoundError))
	require.NoError(t, env.tracker.Propose(id, nil))
	require.NoError(t, env.tracker.Reject(id))
	assert.Equal(t, StageNone, env.staging.Stage(id))

	require.NoError(t, env.tracker.Propose(id, nil))
	require.NoError(t, env.tracker.Schedule(id))
	require.NoError(t, env.tracker.Unschedule(id))
	assert.Equal(t, StageNone, env.staging.Stage(id))

	// still in the committed pool, so inferred as scheduled
	record, err := env.tracker.GetTransaction(id)
	require.NoError(t, err)
	assert.Equal(t, CategoryScheduled, record.Category)
	assert.Nil(t, record.Metadata)
}

func TestTrackerBulk(t *testing.T) {
	env := newTestEnv(Options{})
	a, b, missing := txid("0a"), txid("0b"), txid("0c")
	env.standard.addEntry(a, 100, 100, 1)
	env.standard.addEntry(b, 100, 100, 1)

	result := env.tracker.BulkPropose([]string{a, "bogus", b, missing})
	assert.Equal(t, []string{a, b}, result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, "bogus", result.Failed[0].Txid)
	assert.Equal(t, missing, result.Failed[1].Txid)
	assert.Equal(t, []string{a, b}, env.tracker.ProposedTxids())

	env.committed.sendErr = errors.New("-26: min relay fee not met")
	result = env.tracker.BulkSchedule([]string{a, missing})
	assert.Empty(t, result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.Contains(t, result.Failed[0].Error, "min relay fee not met")

	env.committed.sendErr = nil
	result = env.tracker.BulkSchedule([]string{a, b})
	assert.Equal(t, []string{a, b}, result.Succeeded)
	assert.Empty(t, result.Failed)
	assert.Equal(t, []string{a, b}, env.tracker.ScheduledTxids())
	assert.Empty(t, env.tracker.ProposedTxids())
}

func TestTrackerCommit(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("01")
	env.standard.addEntry(id, 100, 100, 1)

	got, err := env.tracker.Commit(id)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, StageNone, env.staging.Stage(id))

	records := env.tracker.ListByCategory(CategoryScheduled)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].Txid)

	_, err = env.tracker.Commit(txid("02"))
	assert.True(t, IsKind(err, NotFoundError))
}

func TestTrackerListTransactions(t *testing.T) {
	env := newTestEnv(Options{})
	env.standard.addEntry(txid("01"), 100, 100, 10)
	env.standard.addEntry(txid("02"), 100, 100, 20)
	env.committed.addEntry(txid("02"), 100, 100, 20)
	env.committed.addEntry(txid("03"), 100, 100, 30)

	records := env.tracker.ListTransactions()
	require.Len(t, records, 3)
	assert.Equal(t, txid("03"), records[0].Txid)
	assert.Equal(t, txid("01"), records[2].Txid)

	assert.Len(t, env.tracker.ListByCategory(CategoryMempool), 1)
	assert.Len(t, env.tracker.ListByCategory(CategoryScheduled), 2)
}

func TestTrackerReplacedAcrossListings(t *testing.T) {
	env := newTestEnv(Options{})
	id := txid("01")
	env.standard.addEntry(id, 100, 100, 10)
	require.Len(t, env.tracker.ListTransactions(), 1)

	env.standard.drop(id)
	record, found := env.tracker.enricher.BuildTx(id)
	assert.True(t, found)
	assert.Equal(t, CategoryReplaced, record.Category)

	record, _ = env.tracker.enricher.BuildTx(id)
	assert.Equal(t, CategoryUnknown, record.Category)
}

func TestTrackerReconcile(t *testing.T) {
	env := newTestEnv(Options{})
	tracked, untracked := txid("01"), txid("02")
	env.standard.addEntry(tracked, 100, 100, 1)
	require.NoError(t, env.tracker.Propose(tracked, nil))
	require.NoError(t, env.tracker.Schedule(tracked))
	env.committed.addEntry(untracked, 100, 100, 1)

	report := env.tracker.Reconcile()
	assert.Equal(t, 2, report.CommittedCount)
	assert.Equal(t, []string{untracked}, report.Untracked)
	assert.Same(t, report, env.tracker.LastReconcile())
	assert.Equal(t, StageNone, env.staging.Stage(untracked))

	env.committed.listErr = errors.New("refused")
	report = env.tracker.Reconcile()
	assert.Equal(t, "refused", report.CommittedFailed)
	assert.Empty(t, report.Untracked)
}

func TestTrackerNodeHeightsAndRawTx(t *testing.T) {
	env := newTestEnv(Options{})
	env.standard.height = 10
	env.committed.height = 10
	h := env.tracker.NodeHeights()
	assert.True(t, h.Synced)

	env.committed.heightErr = errors.New("down")
	h = env.tracker.NodeHeights()
	assert.False(t, h.Synced)
	assert.Equal(t, "down", h.CommittedError)

	id := txid("01")
	env.committed.addEntry(id, 100, 100, 1)
	raw, err := env.tracker.RawTx(id)
	require.NoError(t, err)
	assert.Equal(t, "raw-"+id, raw)

	_, err = env.tracker.RawTx(txid("02"))
	assert.True(t, IsKind(err, NotFoundError))
}
