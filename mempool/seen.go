package mempool

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

type seenRegistry struct {
	lastSeen cmap.ConcurrentMap[string, int64]
}

func NewSeenRegistry() SeenRegistry {
	return &seenRegistry{lastSeen: cmap.New[int64]()}
}

func (r *seenRegistry) Touch(txid string, ts int64) {
	r.lastSeen.Set(txid, ts)
}

// Consume pops the entry so that concurrent readers observe it once.
func (r *seenRegistry) Consume(txid string) bool {
	_, ok := r.lastSeen.Pop(txid)
	return ok
}

func (r *seenRegistry) Remove(txid string) {
	r.lastSeen.Remove(txid)
}

func (r *seenRegistry) LastSeen(txid string) (int64, bool) {
	return r.lastSeen.Get(txid)
}

func (r *seenRegistry) Keys() []string {
	return r.lastSeen.Keys()
}

func (r *seenRegistry) Len() int {
	return r.lastSeen.Count()
}
