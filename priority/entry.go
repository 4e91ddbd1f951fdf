package priority

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Entry is a single schedulable unit of work held by a Queue.
//
// Only Priority is consulted for ordering. ArrivalTime breaks ties in
// Snapshot; Deadline and Description are carried for the caller.
type Entry[P constraints.Signed] struct {
	ID          string
	Priority    P
	ArrivalTime time.Time
	Deadline    time.Time // zero when the entry has no deadline
	Description string
}

// HasDeadline reports whether a deadline was set.
func (e Entry[P]) HasDeadline() bool {
	return !e.Deadline.IsZero()
}
