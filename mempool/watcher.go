package mempool

import (
	"sync"
	"time"
)

type SweepStats struct {
	Pooled    int `json:"pooled"`
	Confirmed int `json:"confirmed"`
	Forgotten int `json:"forgotten"`
}

// Sweep refreshes the last-seen time of every pooled transaction, clears
// staged transactions that confirmed while out of both pools and forgets
// seen transactions that confirmed. Unconfirmed absent ids keep their seen
// entry: the sweep never classifies, so pending Replaced verdicts are left
// for readers.
func (p *Tracker) Sweep() *SweepStats {
	ids, _, _ := p.aggregator.PooledTxids()
	ts := p.now()
	pooled := make(map[string]bool, len(ids))
	for _, id := range ids {
		p.seen.Touch(id, ts)
		pooled[id] = true
	}

	stats := &SweepStats{Pooled: len(ids)}
	staged := append(p.staging.Proposed(), p.staging.Scheduled()...)
	for _, id := range staged {
		if pooled[id] {
			continue
		}
		detail := p.enricher.txDetail(id)
		if detail != nil && detail.Confirmations > 0 {
			p.staging.ClearOnConfirm(id)
			p.seen.Remove(id)
			stats.Confirmed++
		}
	}

	for _, id := range p.seen.Keys() {
		if pooled[id] || p.staging.Stage(id) != StageNone {
			continue
		}
		detail := p.enricher.txDetail(id)
		if detail != nil && detail.Confirmations > 0 {
			p.seen.Remove(id)
			stats.Forgotten++
		}
	}
	return stats
}

// Watcher runs Tracker.Sweep on a fixed interval until stopped.
type Watcher struct {
	tracker  *Tracker
	interval time.Duration
	quit     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func NewWatcher(t *Tracker, interval time.Duration) *Watcher {
	return &Watcher{
		tracker:  t,
		interval: interval,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (p *Watcher) Start() {
	go p.run()
}

func (p *Watcher) Stop() {
	p.once.Do(func() { close(p.quit) })
	<-p.done
}

func (p *Watcher) run() {
	defer close(p.done)
	p.tracker.logger.Infof("watcher start, interval %v", p.interval)

	tick := func() {
		start := time.Now()
		stats := p.tracker.Sweep()
		p.tracker.logger.Debugf("sweep: %d pooled, %d staged confirmed, %d forgotten, %v",
			stats.Pooled, stats.Confirmed, stats.Forgotten, time.Since(start))
	}

	tick()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			tick()
		case <-p.quit:
			p.tracker.logger.Info("watcher exit.")
			return
		}
	}
}
