package priority

import "fmt"

// CheckInvariants verifies the heap property and the consistency of the
// position index.
func (q *Queue[P]) CheckInvariants() error {
	if len(q.pos) != len(q.entries) {
		return fmt.Errorf("index holds %d ids, heap holds %d entries", len(q.pos), len(q.entries))
	}
	for id, i := range q.pos {
		if i < 0 || i >= len(q.entries) {
			return fmt.Errorf("id %q indexed at %d, out of range", id, i)
		}
		if q.entries[i].ID != id {
			return fmt.Errorf("id %q indexed at %d, found %q", id, i, q.entries[i].ID)
		}
	}
	for i := 1; i < len(q.entries); i++ {
		parent := (i - 1) / 2
		if q.entries[parent].Priority < q.entries[i].Priority {
			return fmt.Errorf("heap violated: parent %d (%d) < child %d (%d)",
				parent, q.entries[parent].Priority, i, q.entries[i].Priority)
		}
	}
	return nil
}

func (s *SyncQueue[P]) CheckInvariants() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.CheckInvariants()
}
