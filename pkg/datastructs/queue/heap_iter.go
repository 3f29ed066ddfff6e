package queue

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// HeapIterator walks a sorted snapshot of a Heap taken when the iterator was created.
// Any structural change to the heap afterwards invalidates the iterator.
type HeapIterator[T any] struct {
	heap       *Heap[T]
	generation uint64
	sorted     []entry[T]
	pos        int
}

// Iterator returns an iterator over the queued items in dequeue order.
func (h *Heap[T]) Iterator() *HeapIterator[T] {
	return &HeapIterator[T]{
		heap:       h,
		generation: h.generation,
		sorted:     h.snapshot(),
	}
}

// snapshot copies the occupied prefix and sorts it by (value, sequence).
func (h *Heap[T]) snapshot() []entry[T] {
	sorted := make([]entry[T], h.size)
	copy(sorted, h.entries[:h.size])
	slices.SortFunc(sorted, h.compareEntries)
	return sorted
}

func (it *HeapIterator[T]) check() error {
	if it.generation != it.heap.generation {
		return errors.Wrapf(ErrConcurrentModification,
			"iterator taken at generation %d, heap at %d", it.generation, it.heap.generation)
	}
	return nil
}

// HasNext reports whether Next has another item to return.
func (it *HeapIterator[T]) HasNext() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}
	return it.pos < len(it.sorted), nil
}

// Next returns the next item in order.
func (it *HeapIterator[T]) Next() (T, error) {
	var zero T
	ok, err := it.HasNext()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, errors.Wrapf(ErrNoSuchElement, "iterator exhausted after %d items", len(it.sorted))
	}
	item := it.sorted[it.pos].value
	it.pos++
	return item, nil
}

// Remove always fails: the iterator is a read-only view.
func (it *HeapIterator[T]) Remove() error {
	return errors.WithStack(ErrUnsupportedOperation)
}
