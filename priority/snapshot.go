package priority

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Snapshot returns copies of all queued entries without modifying the queue.
// Entries are ordered by priority (highest first), then by arrival time
// (earliest first), then by ID.
func (q *Queue[P]) Snapshot() []Entry[P] {
	t := btree.NewG[Entry[P]](2, auditLess[P])
	for _, e := range q.entries {
		t.ReplaceOrInsert(e)
	}

	out := make([]Entry[P], 0, t.Len())
	t.Ascend(func(e Entry[P]) bool {
		out = append(out, e)
		return true
	})
	return out
}

func auditLess[P constraints.Signed](a, b Entry[P]) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.ArrivalTime.Equal(b.ArrivalTime) {
		return a.ArrivalTime.Before(b.ArrivalTime)
	}
	return a.ID < b.ID
}
