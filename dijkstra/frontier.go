package dijkstra

import "container/heap"

// frontierItem is one queued (cost, state) pair. seq is the insertion
// number that breaks cost ties, so pop order is fully deterministic.
type frontierItem struct {
	state State
	cost  int64
	seq   uint64
}

// frontierHeap is a min-heap of frontierItem ordered by (cost, seq).
// We use the “lazy-decrease-key” approach: an improved cost for a state is a
// new entry; the outdated entry stays and is skipped when popped (visited check).
type frontierHeap []frontierItem

// Len returns the number of items in the heap.
func (h frontierHeap) Len() int { return len(h) }

// Less orders by cost, then by insertion order.
func (h frontierHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontier wraps frontierHeap with the insertion counter.
type frontier struct {
	items frontierHeap
	next  uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{items: make(frontierHeap, 0, capacity)}
}

// push inserts s with cumulative cost c.
func (f *frontier) push(s State, c int64) {
	heap.Push(&f.items, frontierItem{state: s, cost: c, seq: f.next})
	f.next++
}

// pop removes the minimum entry. ok is false when the frontier is empty.
func (f *frontier) pop() (item frontierItem, ok bool) {
	if f.items.Len() == 0 {
		return frontierItem{}, false
	}

	return heap.Pop(&f.items).(frontierItem), true
}

// pushed returns how many entries were ever inserted.
func (f *frontier) pushed() int { return int(f.next) }
