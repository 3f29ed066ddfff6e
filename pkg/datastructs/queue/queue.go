package queue

// Queue is a generic interface for bounded queues.
type Queue[T any] interface {
	// Enqueue adds an item to the queue.
	// Returns true if successful, false if the queue is full.
	Enqueue(item T) bool

	// Dequeue removes and returns an item from the queue.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	Dequeue() (T, bool)

	// Capacity returns the total capacity of the queue.
	Capacity() uint64
}

// PriorityQueue is a bounded queue that dequeues its smallest item first.
// Items that compare equal leave in the order they were inserted.
type PriorityQueue[T any] interface {
	Queue[T]

	// Insert adds an item. Returns false if the queue is full.
	Insert(item T) bool

	// Remove removes and returns the smallest item.
	// Returns (zero, false) if the queue is empty.
	Remove() (T, bool)

	// Delete removes every item equal to the given one.
	// Returns true if at least one item was removed.
	Delete(item T) bool

	// Peek returns the smallest item without removing it.
	Peek() (T, bool)

	// Contains reports whether an item equal to the given one is queued.
	Contains(item T) bool

	// Len returns the number of queued items.
	Len() int

	// Clear empties the queue.
	Clear()

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool

	// IsFull reports whether the queue is at capacity.
	IsFull() bool
}
