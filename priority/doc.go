// Package priority implements an indexed max-priority queue: a binary max-heap
// whose entries can be re-prioritised in place after insertion, located by a
// caller supplied ID.
//
// Alongside the heap the queue keeps an index from ID to heap position. Every
// swap, append and removal updates both structures together, which is what
// lets IncreaseKey and DecreaseKey find an arbitrary entry in O(1) and restore
// the heap in O(log n).
//
// Key features:
//   - Generic over any signed integer priority type
//   - O(log n) Insert, ExtractMax, IncreaseKey and DecreaseKey
//   - O(1) Peek, Get and Contains
//   - Typed errors matched with errors.Is; a failed call never modifies the queue
//   - Draining iterator yielding entries in non-increasing priority order
//   - Ordered, non-destructive Snapshot for auditing
//   - SyncQueue for use from multiple goroutines, with an Observer hook
//
// Basic usage:
//
//	pq := priority.New[int]()
//
//	_ = pq.Insert(priority.Entry[int]{ID: "A", Priority: 5})
//	_ = pq.Insert(priority.Entry[int]{ID: "B", Priority: 2})
//	_ = pq.Insert(priority.Entry[int]{ID: "C", Priority: 9})
//
//	// Raise B above A
//	if err := pq.IncreaseKey("B", 7); err != nil {
//	    log.Fatal(err)
//	}
//
//	for e := range pq.Drain() {
//	    fmt.Printf("%s: %d\n", e.ID, e.Priority) // C: 9, B: 7, A: 5
//	}
//
// IncreaseKey rejects a lower priority and DecreaseKey rejects a higher one
// with ErrInvalidDirection. Passing the current priority to either is
// accepted and leaves the queue unchanged.
package priority
