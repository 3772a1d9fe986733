package planner

import "container/heap"

// queueItem is one pending entry in a search frontier. Priority is the
// metric being minimised (arrival time or cumulative price), Arrive is
// the arrival time at Airport, carried so the layover threshold for
// outbound edges can be computed when the item is popped.
type queueItem struct {
	Priority int
	Arrive   int
	Airport  string
}

// searchQueue is a min-heap of queueItems ordered by (Priority, Arrive,
// Airport). Stale entries are never removed early - each search uses a
// lazy decrease-key and simply ignores entries that no longer improve
// anything.
type searchQueue []queueItem

func (q searchQueue) Len() int { return len(q) }

func (q searchQueue) Less(i, j int) bool {
	if q[i].Priority != q[j].Priority {
		return q[i].Priority < q[j].Priority
	}
	if q[i].Arrive != q[j].Arrive {
		return q[i].Arrive < q[j].Arrive
	}

	return q[i].Airport < q[j].Airport
}

func (q searchQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *searchQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *searchQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]

	return item
}

func (q *searchQueue) enqueue(item queueItem) {
	heap.Push(q, item)
}

func (q *searchQueue) dequeue() (queueItem, bool) {
	if q.Len() == 0 {
		return queueItem{}, false
	}

	return heap.Pop(q).(queueItem), true
}
