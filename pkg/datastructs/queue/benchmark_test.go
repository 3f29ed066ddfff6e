package queue

import (
	"math/rand"
	"testing"
)

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

// queueBenchConfig holds benchmark test configuration.
type queueBenchConfig struct {
	name     string
	capacity int
}

// benchConfigs defines the data sizes for benchmarking.
var benchConfigs = []queueBenchConfig{
	{"Small/Cap64", 64},
	{"Medium/Cap1K", 1024},
	{"Large/Cap64K", 64 * 1024},
}

// ===========================================================================
// Queue Factory Registry
// ===========================================================================

// queueFactory creates a Queue[int] with the given capacity.
type queueFactory func(capacity int) Queue[int]

// queueImplementations holds all registered queue implementations.
var queueImplementations = map[string]queueFactory{
	"Heap": func(capacity int) Queue[int] { return NewHeap[int](WithCapacity(capacity)) },
}

// shuffled returns 0..n-1 in a fixed random order so heap inserts do real sifting.
func shuffled(n int) []int {
	rng := rand.New(rand.NewSource(1))
	return rng.Perm(n)
}

// ===========================================================================
// Queue Benchmarks
// ===========================================================================

// BenchmarkEnqueue measures Enqueue performance.
func BenchmarkEnqueue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				values := shuffled(cfg.capacity)
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Enqueue(values[i%cfg.capacity])
					// Drain to avoid full queue
					if i%cfg.capacity == cfg.capacity-1 {
						b.StopTimer()
						for j := 0; j < cfg.capacity; j++ {
							q.Dequeue()
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkDequeue measures Dequeue performance.
func BenchmarkDequeue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				values := shuffled(cfg.capacity)
				for _, v := range values {
					q.Enqueue(v)
				}

				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, ok := q.Dequeue()
					// Refill when empty
					if !ok {
						b.StopTimer()
						for _, v := range values {
							q.Enqueue(v)
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkEnqueueDequeue measures roundtrip Enqueue+Dequeue.
func BenchmarkEnqueueDequeue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Enqueue(i)
					q.Dequeue()
				}
			})
		}
	}
}

// ===========================================================================
// Heap Benchmarks
// ===========================================================================

// BenchmarkHeap_Delete measures deleting a single value from a full heap.
func BenchmarkHeap_Delete(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			h := NewHeap[int](WithCapacity(cfg.capacity))
			values := shuffled(cfg.capacity)
			for _, v := range values {
				h.Insert(v)
			}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := values[i%cfg.capacity]
				h.Delete(v)
				h.Insert(v)
			}
		})
	}
}

// BenchmarkHeap_Iterator measures snapshot creation plus a full walk.
func BenchmarkHeap_Iterator(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			h := NewHeap[int](WithCapacity(cfg.capacity))
			for _, v := range shuffled(cfg.capacity) {
				h.Insert(v)
			}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				it := h.Iterator()
				for {
					ok, _ := it.HasNext()
					if !ok {
						break
					}
					_, _ = it.Next()
				}
			}
		})
	}
}

// ===========================================================================
// Throughput Benchmark (items/second)
// ===========================================================================

// BenchmarkThroughput measures maximum single-threaded throughput.
func BenchmarkThroughput(b *testing.B) {
	const capacity = 1024

	for implName, factory := range queueImplementations {
		b.Run(implName, func(b *testing.B) {
			q := factory(capacity)
			values := shuffled(capacity)
			b.ResetTimer()
			b.ReportAllocs()

			ops := 0
			for i := 0; i < b.N; i++ {
				// Enqueue batch
				for _, v := range values {
					q.Enqueue(v)
				}
				// Dequeue batch
				for j := 0; j < capacity; j++ {
					q.Dequeue()
				}
				ops += capacity * 2
			}
			b.ReportMetric(float64(ops)/b.Elapsed().Seconds(), "ops/s")
		})
	}
}
