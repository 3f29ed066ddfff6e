package queue

const (
	// DefaultCapacity is used when a heap is built without a positive capacity.
	DefaultCapacity = 1000
)
