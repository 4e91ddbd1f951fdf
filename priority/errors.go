package priority

import "errors"

var (
	ErrDuplicateID      = errors.New("priority: duplicate identifier")
	ErrEmpty            = errors.New("priority: queue is empty")
	ErrUnknownID        = errors.New("priority: unknown identifier")
	ErrInvalidDirection = errors.New("priority: invalid priority direction")
)
