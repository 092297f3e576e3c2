package agingsched

import "container/heap"

// Ensure taskHeap implements [heap.Interface].
var _ heap.Interface = (*taskHeap[any])(nil)

// taskHeap orders tasks by coarse priority, highest first, and then by
// insertion order. Tasks sharing a coarse priority therefore sit together at
// the top of the heap once every higher group has been extracted.
type taskHeap[T comparable] []*Task[T]

func (h taskHeap[T]) Len() int { return len(h) }

func (h taskHeap[T]) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.coarse != b.coarse {
		return a.coarse > b.coarse
	}
	return a.seqNo < b.seqNo
}

func (h taskHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap[T]) Push(x any) {
	task := x.(*Task[T])
	task.index = len(*h)
	*h = append(*h, task)
}

func (h *taskHeap[T]) Pop() any {
	old := *h
	n := len(old)
	task := old[n-1]
	old[n-1] = nil  // avoid memory leak
	task.index = -1 // for safety
	*h = old[0 : n-1]
	return task
}

// popGroup removes and returns every task sharing the highest coarse
// priority, in insertion order. The heap must not be empty.
func (h *taskHeap[T]) popGroup() []*Task[T] {
	first := heap.Pop(h).(*Task[T])
	group := []*Task[T]{first}
	for h.Len() > 0 && (*h)[0].coarse == first.coarse {
		group = append(group, heap.Pop(h).(*Task[T]))
	}
	return group
}

// pushAll pushes every task in tasks except skip back onto the heap.
func (h *taskHeap[T]) pushAll(tasks []*Task[T], skip *Task[T]) {
	for _, task := range tasks {
		if task != skip {
			heap.Push(h, task)
		}
	}
}
