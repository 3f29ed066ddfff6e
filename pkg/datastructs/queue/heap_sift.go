package queue

func parent(i int) int { return (i - 1) / 2 }

// removeAt fills slot i with the last entry and restores the heap around it.
// It returns the index the moved entry settled at.
func (h *Heap[T]) removeAt(i int) int {
	last := h.size - 1
	moved := h.entries[last]
	h.entries[last] = entry[T]{}
	h.size--
	h.generation++

	if i == last {
		return i
	}
	h.entries[i] = moved
	if i > 0 && h.less(moved, h.entries[parent(i)]) {
		return h.siftUp(i)
	}
	return h.siftDown(i)
}

// siftUp moves the entry at i toward the root, shifting parents down into the
// hole instead of swapping pairwise. It returns the final index.
func (h *Heap[T]) siftUp(i int) int {
	e := h.entries[i]
	for i > 0 {
		p := parent(i)
		if !h.less(e, h.entries[p]) {
			break
		}
		h.entries[i] = h.entries[p]
		i = p
	}
	h.entries[i] = e
	return i
}

// siftDown moves the entry at i toward the leaves. It returns the final index.
func (h *Heap[T]) siftDown(i int) int {
	e := h.entries[i]
	for {
		c := h.smallerChild(i)
		if c < 0 || !h.less(h.entries[c], e) {
			break
		}
		h.entries[i] = h.entries[c]
		i = c
	}
	h.entries[i] = e
	return i
}

// smallerChild returns the index of the smaller child of i, or -1 for a leaf.
// The left child wins unless the right one is strictly smaller.
func (h *Heap[T]) smallerChild(i int) int {
	left := 2*i + 1
	if left >= h.size {
		return -1
	}
	right := left + 1
	if right < h.size && h.less(h.entries[right], h.entries[left]) {
		return right
	}
	return left
}
