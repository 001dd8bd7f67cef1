// Package mempool tracks transactions that live in two pools: the standard
// node's mempool and the committed node's pool. It classifies every
// transaction into one lifecycle category, keeps the operator's staging
// bookkeeping (propose, schedule, reject, unschedule) and aggregates fee
// statistics across both pools.
//
// All state here is in memory and lost on restart. Transactions that were
// scheduled before a restart are still in the committed pool; they are
// inferred as Scheduled at read time and reported by Tracker.Reconcile.
package mempool

// SeenRegistry remembers when a transaction was last observed in either pool.
// An entry that disappears from both pools without confirming is reported as
// Replaced exactly once.
type SeenRegistry interface {
	Touch(txid string, ts int64)
	// Consume removes txid and reports whether it was present.
	Consume(txid string) bool
	Remove(txid string)
	LastSeen(txid string) (int64, bool)
	Keys() []string
	Len() int
}

// StagingStore holds the manual lifecycle stage of transactions. Every
// check-then-mutate sequence is atomic with respect to concurrent callers.
type StagingStore interface {
	Propose(txid string, notes *string) error
	Schedule(txid string) error
	Reject(txid string) error
	Unschedule(txid string) error
	// ClearOnConfirm drops txid from staging and from the seen registry,
	// whatever its stage.
	ClearOnConfirm(txid string)

	Stage(txid string) Stage
	IsProposed(txid string) bool
	IsScheduled(txid string) bool
	Metadata(txid string) *StagingMetadata

	Proposed() []string
	Scheduled() []string
}

type Stage int

const (
	StageNone Stage = iota
	StageProposed
	StageScheduled
)

func (s Stage) String() string {
	switch s {
	case StageProposed:
		return "proposed"
	case StageScheduled:
		return "scheduled"
	default:
		return "none"
	}
}

type StagingEntry struct {
	Stage       Stage
	ProposedAt  *int64
	ScheduledAt *int64
	Notes       *string
}

// StagingMetadata is the staging information attached to a transaction record.
type StagingMetadata struct {
	ProposedAt  *int64  `json:"proposed_at"`
	ScheduledAt *int64  `json:"scheduled_at"`
	Notes       *string `json:"notes"`
}
