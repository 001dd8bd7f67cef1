package mempool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(distinguishCommitted bool) (*Classifier, *stagingStore, SeenRegistry) {
	seen := NewSeenRegistry()
	clock := &fixedClock{ts: 1000}
	staging := newStagingStore(seen, clock.now)
	c := NewClassifier(staging, seen, distinguishCommitted)
	c.now = clock.now
	return c, staging, seen
}

func TestClassifyConfirmedWins(t *testing.T) {
	c, staging, seen := newTestClassifier(false)
	require.NoError(t, staging.Propose("a", nil))
	require.NoError(t, staging.Schedule("a"))
	require.NoError(t, staging.Propose("b", nil))
	seen.Touch("a", 1)
	seen.Touch("b", 1)

	for _, flags := range [][2]bool{{true, true}, {true, false}, {false, true}, {false, false}} {
		assert.Equal(t, CategoryConfirmed, c.Classify("a", flags[0], flags[1], 3))
		assert.Equal(t, CategoryConfirmed, c.Classify("b", flags[0], flags[1], 1))
	}
	for _, id := range []string{"a", "b"} {
		assert.Equal(t, StageNone, staging.Stage(id))
		_, ok := seen.LastSeen(id)
		assert.False(t, ok)
	}
}

func TestClassifyPriority(t *testing.T) {
	c, staging, _ := newTestClassifier(false)

	assert.Equal(t, CategoryMempool, c.Classify("m", true, false, 0))
	assert.Equal(t, CategoryScheduled, c.Classify("m", true, true, 0))
	assert.Equal(t, CategoryScheduled, c.Classify("x", false, true, 0))

	require.NoError(t, staging.Propose("p", nil))
	assert.Equal(t, CategoryProposed, c.Classify("p", true, false, 0))
	assert.Equal(t, CategoryScheduled, c.Classify("p", true, true, 0))

	require.NoError(t, staging.Schedule("p"))
	assert.Equal(t, CategoryScheduled, c.Classify("p", false, false, 0))

	assert.Equal(t, CategoryUnknown, c.Classify("never", false, false, 0))
}

func TestClassifyDistinguishCommitted(t *testing.T) {
	c, staging, _ := newTestClassifier(true)

	assert.Equal(t, CategoryCommitted, c.Classify("x", false, true, 0))
	assert.Equal(t, CategoryCommitted, c.Classify("x", true, true, 0))

	require.NoError(t, staging.Propose("p", nil))
	assert.Equal(t, CategoryProposed, c.Classify("p", true, true, 0))
	require.NoError(t, staging.Schedule("p"))
	assert.Equal(t, CategoryScheduled, c.Classify("p", true, true, 0))
}

func TestClassifyReplacedOnce(t *testing.T) {
	c, _, seen := newTestClassifier(false)

	assert.Equal(t, CategoryMempool, c.Classify("r", true, false, 0))
	ts, ok := seen.LastSeen("r")
	require.True(t, ok)
	assert.Equal(t, int64(1000), ts)

	assert.Equal(t, CategoryReplaced, c.Classify("r", false, false, 0))
	assert.Equal(t, CategoryUnknown, c.Classify("r", false, false, 0))
	assert.Equal(t, 0, seen.Len())
}

func TestClassifyAbsentDoesNotRecord(t *testing.T) {
	c, _, seen := newTestClassifier(false)
	c.Classify("u", false, false, 0)
	assert.Equal(t, 0, seen.Len())
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("scheduled")
	assert.True(t, ok)
	assert.Equal(t, CategoryScheduled, c)

	_, ok = ParseCategory("pending")
	assert.False(t, ok)
}
