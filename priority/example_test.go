package priority_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/davidvella/taskq/priority"
)

// ExampleQueue demonstrates raising the priority of a queued entry.
func ExampleQueue() {
	pq := priority.New[int]()

	_ = pq.Insert(priority.Entry[int]{ID: "A", Priority: 5, ArrivalTime: time.Unix(0, 0)})
	_ = pq.Insert(priority.Entry[int]{ID: "B", Priority: 2, ArrivalTime: time.Unix(1, 0)})
	_ = pq.Insert(priority.Entry[int]{ID: "C", Priority: 9, ArrivalTime: time.Unix(2, 0)})

	// B jumps ahead of A
	if err := pq.IncreaseKey("B", 7); err != nil {
		fmt.Println(err)
	}

	for !pq.IsEmpty() {
		e, _ := pq.ExtractMax()
		fmt.Printf("%s: %d\n", e.ID, e.Priority)
	}

	// Output:
	// C: 9
	// B: 7
	// A: 5
}

// ExampleQueue_Drain demonstrates consuming a queue in priority order.
func ExampleQueue_Drain() {
	pq := priority.New[int]()
	for i, p := range []int{4, 8, 1, 6} {
		_ = pq.Insert(priority.Entry[int]{ID: fmt.Sprintf("task%d", i), Priority: p})
	}

	_ = pq.DecreaseKey("task1", 3)

	for e := range pq.Drain() {
		fmt.Printf("%s: %d\n", e.ID, e.Priority)
	}

	// Output:
	// task3: 6
	// task0: 4
	// task1: 3
	// task2: 1
}

// ExampleQueue_errors demonstrates matching the typed failures.
func ExampleQueue_errors() {
	pq := priority.New[int]()

	_, err := pq.ExtractMax()
	fmt.Println(errors.Is(err, priority.ErrEmpty))

	_ = pq.Insert(priority.Entry[int]{ID: "A", Priority: 5})
	err = pq.Insert(priority.Entry[int]{ID: "A", Priority: 1})
	fmt.Println(errors.Is(err, priority.ErrDuplicateID))

	err = pq.DecreaseKey("A", 10)
	fmt.Println(err)

	err = pq.IncreaseKey("B", 10)
	fmt.Println(errors.Is(err, priority.ErrUnknownID))

	// Output:
	// true
	// true
	// priority: invalid priority direction: cannot decrease "A" from 5 to 10
	// true
}
