package priority

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Queue is an indexed max-priority queue. Entries are kept by value in an
// array-backed binary heap and located by ID through a position index, so
// any queued entry can be re-prioritised in O(log n).
//
// A Queue is not safe for concurrent use. Use SyncQueue when it is shared.
type Queue[P constraints.Signed] struct {
	entries []Entry[P]
	pos     map[string]int // ID -> index into entries
}

// New creates an empty queue. Only WithCapacity applies to a Queue; an
// observer set with WithObserver is ignored. Use NewSync for observed queues.
func New[P constraints.Signed](opts ...Option) *Queue[P] {
	o := buildOptions(opts)
	return &Queue[P]{
		entries: make([]Entry[P], 0, o.capacity),
		pos:     make(map[string]int, o.capacity),
	}
}

// Len returns the number of entries in the queue.
func (q *Queue[P]) Len() int {
	return len(q.entries)
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[P]) IsEmpty() bool {
	return len(q.entries) == 0
}

// Contains reports whether an entry with the given ID is queued.
func (q *Queue[P]) Contains(id string) bool {
	_, ok := q.pos[id]
	return ok
}

// Get returns a copy of the queued entry with the given ID.
func (q *Queue[P]) Get(id string) (Entry[P], bool) {
	i, ok := q.pos[id]
	if !ok {
		var zero Entry[P]
		return zero, false
	}
	return q.entries[i], true
}

// Peek returns a copy of the highest priority entry without removing it.
func (q *Queue[P]) Peek() (Entry[P], bool) {
	if len(q.entries) == 0 {
		var zero Entry[P]
		return zero, false
	}
	return q.entries[0], true
}

// Insert adds e to the queue. It fails with ErrDuplicateID, leaving the
// queue untouched, if an entry with the same ID is already queued.
func (q *Queue[P]) Insert(e Entry[P]) error {
	if _, exists := q.pos[e.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
	}
	q.push(e)
	q.up(len(q.entries) - 1)
	return nil
}

// ExtractMax removes and returns the highest priority entry. It fails with
// ErrEmpty when the queue has no entries.
func (q *Queue[P]) ExtractMax() (Entry[P], error) {
	if len(q.entries) == 0 {
		var zero Entry[P]
		return zero, ErrEmpty
	}

	last := len(q.entries) - 1
	if last > 0 {
		q.swap(0, last)
	}
	top := q.popLast()
	if len(q.entries) > 1 {
		q.down(0)
	}
	return top, nil
}

// IncreaseKey raises the priority of the entry with the given ID to p.
// Setting the current priority again is accepted and changes nothing.
func (q *Queue[P]) IncreaseKey(id string, p P) error {
	i, ok := q.pos[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	if cur := q.entries[i].Priority; p < cur {
		return fmt.Errorf("%w: cannot increase %q from %d to %d", ErrInvalidDirection, id, cur, p)
	}

	q.setPriority(i, p)
	q.up(i)
	return nil
}

// DecreaseKey lowers the priority of the entry with the given ID to p.
// Setting the current priority again is accepted and changes nothing.
func (q *Queue[P]) DecreaseKey(id string, p P) error {
	i, ok := q.pos[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	if cur := q.entries[i].Priority; p > cur {
		return fmt.Errorf("%w: cannot decrease %q from %d to %d", ErrInvalidDirection, id, cur, p)
	}

	q.setPriority(i, p)
	q.down(i)
	return nil
}

// Drain returns an iterator that extracts entries until the queue is empty,
// yielding them in non-increasing priority order. Entries not yet yielded
// when the caller stops iterating remain queued.
func (q *Queue[P]) Drain() iter.Seq[Entry[P]] {
	return func(yield func(Entry[P]) bool) {
		for len(q.entries) > 0 {
			e, _ := q.ExtractMax()
			if !yield(e) {
				return
			}
		}
	}
}

// The methods below are the only code that writes entries or pos.

// swap exchanges the entries at i and j and rewrites both index slots.
func (q *Queue[P]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.pos[q.entries[i].ID] = i
	q.pos[q.entries[j].ID] = j
}

// push appends e and indexes it at the new last position.
func (q *Queue[P]) push(e Entry[P]) {
	q.entries = append(q.entries, e)
	q.pos[e.ID] = len(q.entries) - 1
}

// popLast removes the last entry and drops it from the index.
func (q *Queue[P]) popLast() Entry[P] {
	n := len(q.entries) - 1
	e := q.entries[n]
	q.entries[n] = Entry[P]{}
	q.entries = q.entries[:n]
	delete(q.pos, e.ID)
	return e
}

func (q *Queue[P]) setPriority(i int, p P) {
	q.entries[i].Priority = p
}

// up moves the entry at index i towards the root while it outranks its parent.
func (q *Queue[P]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.entries[parent].Priority >= q.entries[i].Priority {
			break
		}
		q.swap(parent, i)
		i = parent
	}
}

// down moves the entry at index i towards the leaves while a child outranks
// it. On equal children the left one wins.
func (q *Queue[P]) down(i int) {
	n := len(q.entries)
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && q.entries[left].Priority > q.entries[largest].Priority {
			largest = left
		}
		if right < n && q.entries[right].Priority > q.entries[largest].Priority {
			largest = right
		}

		if largest == i {
			break
		}

		q.swap(i, largest)
		i = largest
	}
}
