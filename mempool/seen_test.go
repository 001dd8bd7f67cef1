package mempool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeenRegistry(t *testing.T) {
	r := NewSeenRegistry()
	r.Touch("a", 10)
	r.Touch("a", 20)
	r.Touch("b", 15)

	ts, ok := r.LastSeen("a")
	assert.True(t, ok)
	assert.Equal(t, int64(20), ts)
	assert.Equal(t, 2, r.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, r.Keys())

	assert.True(t, r.Consume("a"))
	assert.False(t, r.Consume("a"))

	r.Remove("b")
	r.Remove("b")
	assert.Equal(t, 0, r.Len())
}

func TestSeenRegistryConsumeOnce(t *testing.T) {
	r := NewSeenRegistry()
	r.Touch("x", 1)

	var wg sync.WaitGroup
	var mutex sync.Mutex
	hits := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Consume("x") {
				mutex.Lock()
				hits++
				mutex.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, hits)
}
