package priority

// Op names a public queue operation.
type Op string

const (
	OpInsert      Op = "insert"
	OpExtractMax  Op = "extract_max"
	OpIncreaseKey Op = "increase_key"
	OpDecreaseKey Op = "decrease_key"
)

// Observer receives notifications about SyncQueue operations. Depth is the
// number of queued entries after the operation. Priorities are widened to
// int64 so one observer can serve queues of any priority type.
//
// Methods are called after the queue lock is released and must not block.
type Observer interface {
	Inserted(id string, depth int)
	Extracted(id string, depth int)
	KeyChanged(op Op, id string, from, to int64, depth int)
	Rejected(op Op, id string, err error)
}

type nopObserver struct{}

func (nopObserver) Inserted(string, int) {}
func (nopObserver) Extracted(string, int) {}
func (nopObserver) KeyChanged(Op, string, int64, int64, int) {}
func (nopObserver) Rejected(Op, string, error) {}
