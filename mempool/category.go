package mempool

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryConfirmed Category = "Confirmed"
	CategoryScheduled Category = "Scheduled"
	CategoryProposed  Category = "Proposed"
	CategoryCommitted Category = "Committed"
	CategoryMempool   Category = "Mempool"
	CategoryReplaced  Category = "Replaced"
	CategoryUnknown   Category = "Unknown"
)

// ParseCategory accepts the label in any case.
func ParseCategory(s string) (Category, bool) {
	for _, c := range []Category{
		CategoryConfirmed, CategoryScheduled, CategoryProposed, CategoryCommitted,
		CategoryMempool, CategoryReplaced, CategoryUnknown,
	} {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Classifier assigns one lifecycle category to a transaction by fixed priority:
// Confirmed, Scheduled, Proposed, Committed, Mempool, Replaced, Unknown.
//
// With distinguishCommitted unset, presence in the committed pool counts as
// Scheduled and Committed is never produced.
type Classifier struct {
	staging              StagingStore
	seen                 SeenRegistry
	distinguishCommitted bool
	now                  func() int64
}

func NewClassifier(staging StagingStore, seen SeenRegistry, distinguishCommitted bool) *Classifier {
	return &Classifier{
		staging:              staging,
		seen:                 seen,
		distinguishCommitted: distinguishCommitted,
		now:                  func() int64 { return time.Now().Unix() },
	}
}

// Classify has two side effects: a confirmed transaction is cleared from
// staging and the seen registry, and a transaction present in either pool has
// its last-seen time refreshed after the Replaced check.
func (c *Classifier) Classify(txid string, inStandard, inCommitted bool, confirmations uint64) Category {
	if confirmations > 0 {
		c.staging.ClearOnConfirm(txid)
		c.seen.Remove(txid)
		return CategoryConfirmed
	}

	category := c.pick(txid, inStandard, inCommitted)
	if inStandard || inCommitted {
		c.seen.Touch(txid, c.now())
	}
	return category
}

func (c *Classifier) pick(txid string, inStandard, inCommitted bool) Category {
	stage := c.staging.Stage(txid)
	if stage == StageScheduled || (inCommitted && !c.distinguishCommitted) {
		return CategoryScheduled
	}
	if stage == StageProposed {
		return CategoryProposed
	}
	if inCommitted {
		return CategoryCommitted
	}
	if inStandard {
		return CategoryMempool
	}
	if c.seen.Consume(txid) {
		return CategoryReplaced
	}
	return CategoryUnknown
}
