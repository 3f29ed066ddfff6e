package queue

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-pqueue/pkg/settings"
)

type options struct {
	capacity int
	logger   *zap.Logger
}

// Option configures a Heap.
type Option func(*options)

// WithCapacity sets the fixed capacity. Non-positive values fall back to DefaultCapacity.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithLogger sets the logger used for debug events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSettings applies a priority queue configuration block.
func WithSettings(config settings.PriorityQueue) Option {
	return WithCapacity(config.Capacity)
}

func newOptions(opts []Option) options {
	o := options{
		capacity: DefaultCapacity,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		o.capacity = DefaultCapacity
	}
	return o
}
