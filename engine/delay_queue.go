package engine

import (
	"container/heap"
	"time"
)

// delayedTask is a one-shot task keyed by caller identity
type delayedTask struct {
	key   uint64
	at    time.Time
	seq   uint64 // insertion order, breaks deadline ties
	fn    Task
	index int
}

// delayQueue is a min-heap on (at, seq)
type delayQueue []*delayedTask

func (q delayQueue) Len() int { return len(q) }

func (q delayQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q delayQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *delayQueue) Push(x any) {
	t := x.(*delayedTask)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *delayQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

func (q *delayQueue) peek() *delayedTask {
	if len(*q) == 0 {
		return nil
	}
	return (*q)[0]
}

var _ heap.Interface = (*delayQueue)(nil)
