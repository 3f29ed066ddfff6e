package queue

import "github.com/pkg/errors"

var (
	// ErrConcurrentModification is returned by an iterator whose heap changed after the iterator was created.
	ErrConcurrentModification = errors.New("queue: concurrent modification")

	// ErrNoSuchElement is returned when advancing an exhausted iterator.
	ErrNoSuchElement = errors.New("queue: no such element")

	// ErrUnsupportedOperation is returned when removing through a read-only iterator.
	ErrUnsupportedOperation = errors.New("queue: unsupported operation")
)
