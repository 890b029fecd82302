package schedulers

import (
	"fmt"

	"cpu-scheduling-simulator/internal/core"
)

// RoundRobin is preemptive FIFO scheduling with a fixed time quantum.
type RoundRobin struct {
	Quantum int
}

func NewRoundRobin(quantum int) (*RoundRobin, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrInvalidInput, quantum)
	}
	return &RoundRobin{Quantum: quantum}, nil
}

func (r *RoundRobin) Algorithm() Algorithm { return RoundRobinAlgorithm }

func (r *RoundRobin) Name() string { return "Round Robin" }

func (r *RoundRobin) Simulate(set *core.ProcessSet) *core.SimulationResult {
	if r.Quantum <= 0 {
		panic(fmt.Sprintf("schedulers: round robin with non-positive quantum %d", r.Quantum))
	}
	n := set.Len()
	result := core.NewSimulationResult(set)
	remaining := set.Bursts()
	admitted := make([]bool, n)
	queue := core.NewReadyQueue(n)
	clock, unfinished := 0, n

	// arrivals are appended in ascending id order
	admit := func() {
		for i := 0; i < n; i++ {
			if !admitted[i] && remaining[i] > 0 && set.Process(i).Arrival <= clock {
				queue.Push(i)
				admitted[i] = true
			}
		}
	}

	for unfinished > 0 {
		admit()
		if queue.Empty() {
			clock = idleUntil(set, clock, remaining)
			continue
		}

		current := queue.Pop()
		slice := min(r.Quantum, remaining[current])
		result.Run(current, clock, clock+slice)
		clock += slice
		remaining[current] -= slice

		// processes that arrived during the slice go ahead of the preempted one
		admit()
		if remaining[current] > 0 {
			queue.Push(current)
			continue
		}
		admitted[current] = false
		result.Complete(current, clock)
		unfinished--
	}
	return result
}
