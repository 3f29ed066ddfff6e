package queue

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

var _ PriorityQueue[int] = (*Heap[int])(nil)

// Heap is a bounded priority queue backed by a binary min-heap in a fixed array.
// Equal items are dequeued in insertion order.
// It is NOT thread-safe.
type Heap[T any] struct {
	id         uuid.UUID
	entries    []entry[T] // len == capacity; [0, size) is occupied
	size       int
	nextSeq    uint64
	generation uint64 // bumped on every structural change
	compare    CompareFunc[T]
	logger     *zap.Logger
}

// NewHeap creates a heap ordered by the natural order of T.
func NewHeap[T constraints.Ordered](opts ...Option) *Heap[T] {
	return NewHeapFunc(compareOrdered[T], opts...)
}

// NewHeapFunc creates a heap ordered by compare.
func NewHeapFunc[T any](compare CompareFunc[T], opts ...Option) *Heap[T] {
	if compare == nil {
		panic("queue: nil compare func")
	}
	o := newOptions(opts)
	id := uuid.New()
	return &Heap[T]{
		id:      id,
		entries: make([]entry[T], o.capacity),
		compare: compare,
		logger:  o.logger.With(zap.Stringer("queue_id", id)),
	}
}

// compareOrdered is a total order over T. NaN sorts before every other value
// and equals only itself.
func compareOrdered[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// ID returns the identity attached to this heap's log lines.
func (h *Heap[T]) ID() uuid.UUID { return h.id }

// Insert adds an item. Returns false without changing the heap if it is full.
func (h *Heap[T]) Insert(item T) bool {
	if h.IsFull() {
		h.logger.Debug("insert rejected, queue full", zap.Int("capacity", len(h.entries)))
		return false
	}

	h.entries[h.size] = entry[T]{value: item, seq: h.nextSeq}
	h.nextSeq++
	h.size++
	h.siftUp(h.size - 1)
	h.generation++
	return true
}

// Remove removes and returns the smallest item, the oldest one among equals.
func (h *Heap[T]) Remove() (T, bool) {
	var zero T
	if h.IsEmpty() {
		return zero, false
	}

	item := h.entries[0].value
	h.removeAt(0)
	return item, true
}

// Delete removes every item that compares equal to item.
// Moved entries keep their insertion sequence, so FIFO order among the
// remaining equal items is unaffected.
func (h *Heap[T]) Delete(item T) bool {
	removed := 0
	for i := 0; i < h.size; {
		if h.compare(h.entries[i].value, item) != 0 {
			i++
			continue
		}
		removed++
		// Everything below the moved entry's resting slot was already scanned.
		if at := h.removeAt(i); at < i {
			i = at
		}
	}

	if removed == 0 {
		return false
	}
	h.logger.Debug("deleted matching items", zap.Int("count", removed), zap.Int("size", h.size))
	return true
}

// Peek returns the smallest item without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if h.IsEmpty() {
		var zero T
		return zero, false
	}
	return h.entries[0].value, true
}

// Contains reports whether an item equal to item is queued.
func (h *Heap[T]) Contains(item T) bool {
	for i := 0; i < h.size; i++ {
		if h.compare(h.entries[i].value, item) == 0 {
			return true
		}
	}
	return false
}

// Len returns the number of queued items.
func (h *Heap[T]) Len() int { return h.size }

// Capacity returns the fixed capacity.
func (h *Heap[T]) Capacity() uint64 { return uint64(len(h.entries)) }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// IsFull reports whether the heap is at capacity.
func (h *Heap[T]) IsFull() bool { return h.size == len(h.entries) }

// Clear removes all items. Sequence numbers keep increasing across a Clear.
func (h *Heap[T]) Clear() {
	dropped := h.size
	clear(h.entries[:h.size])
	h.size = 0
	h.generation++
	h.logger.Debug("cleared", zap.Int("dropped", dropped))
}

// Enqueue is Insert.
func (h *Heap[T]) Enqueue(item T) bool { return h.Insert(item) }

// Dequeue is Remove.
func (h *Heap[T]) Dequeue() (T, bool) { return h.Remove() }

// Sorted returns the queued items in dequeue order without changing the heap.
func (h *Heap[T]) Sorted() []T {
	snap := h.snapshot()
	out := make([]T, len(snap))
	for i, e := range snap {
		out[i] = e.value
	}
	return out
}
