package schedulers

import (
	"container/heap"

	"cpu-scheduling-simulator/internal/core"
)

// ShortestJobNext is non-preemptive scheduling ordered by total burst time.
type ShortestJobNext struct{}

func (ShortestJobNext) Algorithm() Algorithm { return ShortestJobNextAlgorithm }

func (ShortestJobNext) Name() string { return "Shortest Job Next (SJN)" }

func (ShortestJobNext) Simulate(set *core.ProcessSet) *core.SimulationResult {
	n := set.Len()
	result := core.NewSimulationResult(set)
	remaining := set.Bursts()
	admitted := make([]bool, n)
	ready := make(jobQueue, 0, n)
	clock, unfinished, seq := 0, n, 0

	for unfinished > 0 {
		for i := 0; i < n; i++ {
			p := set.Process(i)
			if !admitted[i] && p.Arrival <= clock {
				heap.Push(&ready, &job{id: i, burst: p.Burst, seq: seq})
				admitted[i] = true
				seq++
			}
		}
		if ready.Len() == 0 {
			clock = idleUntil(set, clock, remaining)
			continue
		}

		next := heap.Pop(&ready).(*job)
		result.Run(next.id, clock, clock+next.burst)
		clock += next.burst
		remaining[next.id] = 0
		result.Complete(next.id, clock)
		unfinished--
	}
	return result
}

type job struct {
	id    int
	burst int
	seq   int // admission order
}

// jobQueue is a min-heap on burst, then admission order.
type jobQueue []*job

func (q jobQueue) Len() int { return len(q) }

func (q jobQueue) Less(i, j int) bool {
	if q[i].burst != q[j].burst {
		return q[i].burst < q[j].burst
	}
	return q[i].seq < q[j].seq
}

func (q jobQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *jobQueue) Push(x any) {
	*q = append(*q, x.(*job))
}

func (q *jobQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
