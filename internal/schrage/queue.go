package schrage

import (
	"container/heap"

	"singleMachine/internal/rpq"
)

// tailQueue реализует heap.Interface: сверху работа с наибольшим q.
type tailQueue []rpq.Job

func (q tailQueue) Len() int { return len(q) }

func (q tailQueue) Less(i, j int) bool { return q[i].Tail > q[j].Tail }

func (q tailQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push вызывается только из heap.Push.
func (q *tailQueue) Push(x any) {
	*q = append(*q, x.(rpq.Job))
}

// Pop вызывается только из heap.Pop.
func (q *tailQueue) Pop() any {
	old := *q
	n := len(old)
	j := old[n-1]
	*q = old[:n-1]
	return j
}

func (q *tailQueue) push(j rpq.Job) { heap.Push(q, j) }

func (q *tailQueue) pop() rpq.Job { return heap.Pop(q).(rpq.Job) }
