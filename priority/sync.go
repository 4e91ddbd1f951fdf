package priority

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// SyncQueue is a Queue guarded by a single mutex held for the full duration
// of every operation. Events are reported to the configured Observer once
// the lock has been released.
type SyncQueue[P constraints.Signed] struct {
	mu       sync.Mutex
	q        *Queue[P]
	observer Observer
}

// NewSync creates an empty queue that is safe for concurrent use.
func NewSync[P constraints.Signed](opts ...Option) *SyncQueue[P] {
	o := buildOptions(opts)
	return &SyncQueue[P]{
		q:        New[P](opts...),
		observer: o.observer,
	}
}

// Len returns the number of entries in the queue.
func (s *SyncQueue[P]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Len()
}

// IsEmpty reports whether the queue holds no entries.
func (s *SyncQueue[P]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.IsEmpty()
}

// Get returns a copy of the queued entry with the given ID.
func (s *SyncQueue[P]) Get(id string) (Entry[P], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Get(id)
}

// Peek returns a copy of the highest priority entry without removing it.
func (s *SyncQueue[P]) Peek() (Entry[P], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Peek()
}

// Snapshot returns copies of all queued entries. See Queue.Snapshot.
func (s *SyncQueue[P]) Snapshot() []Entry[P] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Snapshot()
}

// Insert adds e to the queue. See Queue.Insert.
func (s *SyncQueue[P]) Insert(e Entry[P]) error {
	s.mu.Lock()
	err := s.q.Insert(e)
	depth := s.q.Len()
	s.mu.Unlock()

	if err != nil {
		s.observer.Rejected(OpInsert, e.ID, err)
		return err
	}
	s.observer.Inserted(e.ID, depth)
	return nil
}

// ExtractMax removes and returns the highest priority entry. See Queue.ExtractMax.
func (s *SyncQueue[P]) ExtractMax() (Entry[P], error) {
	s.mu.Lock()
	e, err := s.q.ExtractMax()
	depth := s.q.Len()
	s.mu.Unlock()

	if err != nil {
		s.observer.Rejected(OpExtractMax, "", err)
		return e, err
	}
	s.observer.Extracted(e.ID, depth)
	return e, nil
}

// IncreaseKey raises the priority of an entry. See Queue.IncreaseKey.
func (s *SyncQueue[P]) IncreaseKey(id string, p P) error {
	return s.changeKey(OpIncreaseKey, id, p, s.q.IncreaseKey)
}

// DecreaseKey lowers the priority of an entry. See Queue.DecreaseKey.
func (s *SyncQueue[P]) DecreaseKey(id string, p P) error {
	return s.changeKey(OpDecreaseKey, id, p, s.q.DecreaseKey)
}

func (s *SyncQueue[P]) changeKey(op Op, id string, p P, change func(string, P) error) error {
	s.mu.Lock()
	var from P
	if e, ok := s.q.Get(id); ok {
		from = e.Priority
	}
	err := change(id, p)
	depth := s.q.Len()
	s.mu.Unlock()

	if err != nil {
		s.observer.Rejected(op, id, err)
		return err
	}
	s.observer.KeyChanged(op, id, int64(from), int64(p), depth)
	return nil
}
