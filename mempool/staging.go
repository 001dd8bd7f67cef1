package mempool

import (
	"sort"
	"sync"
	"time"
)

type stagingStore struct {
	mutex   sync.Mutex
	entries map[string]*StagingEntry
	seen    SeenRegistry
	now     func() int64
}

// NewStagingStore creates an empty store. seen may be nil; when set, a
// confirmation clears the transaction from it as well.
func NewStagingStore(seen SeenRegistry) StagingStore {
	return newStagingStore(seen, func() int64 { return time.Now().Unix() })
}

func newStagingStore(seen SeenRegistry, now func() int64) *stagingStore {
	return &stagingStore{
		entries: make(map[string]*StagingEntry),
		seen:    seen,
		now:     now,
	}
}

func (p *stagingStore) Propose(txid string, notes *string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	entry, ok := p.entries[txid]
	if ok && entry.Stage == StageScheduled {
		return stateConflict(txid, "transaction is already scheduled")
	}
	ts := p.now()
	if !ok {
		entry = &StagingEntry{}
		p.entries[txid] = entry
	}
	entry.Stage = StageProposed
	entry.ProposedAt = &ts
	if notes != nil {
		n := *notes
		entry.Notes = &n
	}
	return nil
}

func (p *stagingStore) Schedule(txid string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	entry, ok := p.entries[txid]
	if !ok || entry.Stage != StageProposed {
		return stateConflict(txid, "transaction must be proposed before it can be scheduled")
	}
	ts := p.now()
	entry.Stage = StageScheduled
	entry.ScheduledAt = &ts
	return nil
}

func (p *stagingStore) Reject(txid string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	entry, ok := p.entries[txid]
	if !ok || entry.Stage != StageProposed {
		return notFound(txid, "transaction is not proposed")
	}
	delete(p.entries, txid)
	return nil
}

func (p *stagingStore) Unschedule(txid string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	entry, ok := p.entries[txid]
	if !ok || entry.Stage != StageScheduled {
		return notFound(txid, "transaction is not scheduled")
	}
	delete(p.entries, txid)
	return nil
}

func (p *stagingStore) ClearOnConfirm(txid string) {
	p.mutex.Lock()
	delete(p.entries, txid)
	p.mutex.Unlock()

	if p.seen != nil {
		p.seen.Remove(txid)
	}
}

func (p *stagingStore) Stage(txid string) Stage {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if entry, ok := p.entries[txid]; ok {
		return entry.Stage
	}
	return StageNone
}

func (p *stagingStore) IsProposed(txid string) bool {
	return p.Stage(txid) == StageProposed
}

func (p *stagingStore) IsScheduled(txid string) bool {
	return p.Stage(txid) == StageScheduled
}

func (p *stagingStore) Metadata(txid string) *StagingMetadata {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	entry, ok := p.entries[txid]
	if !ok {
		return nil
	}
	return &StagingMetadata{
		ProposedAt:  copyInt64(entry.ProposedAt),
		ScheduledAt: copyInt64(entry.ScheduledAt),
		Notes:       copyString(entry.Notes),
	}
}

func (p *stagingStore) Proposed() []string {
	return p.withStage(StageProposed)
}

func (p *stagingStore) Scheduled() []string {
	return p.withStage(StageScheduled)
}

func (p *stagingStore) withStage(stage Stage) []string {
	p.mutex.Lock()
	result := make([]string, 0)
	for txid, entry := range p.entries {
		if entry.Stage == stage {
			result = append(result, txid)
		}
	}
	p.mutex.Unlock()
	sort.Strings(result)
	return result
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
