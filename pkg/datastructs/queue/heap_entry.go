package queue

// entry pairs a queued value with its insertion sequence.
type entry[T any] struct {
	value T
	seq   uint64
}

// CompareFunc returns a negative number when a < b, zero when a == b and a positive number when a > b.
type CompareFunc[T any] func(a, b T) int

// less orders entries by value, then by ascending sequence so older entries win ties.
func (h *Heap[T]) less(a, b entry[T]) bool {
	if c := h.compare(a.value, b.value); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

// compareEntries is the three-way form of less, used for sorting snapshots.
func (h *Heap[T]) compareEntries(a, b entry[T]) int {
	if c := h.compare(a.value, b.value); c != 0 {
		return c
	}
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}
