package schedulers

import (
	"cpu-scheduling-simulator/internal/core"
)

// Priority is non-preemptive priority scheduling. A lower value means a
// higher priority; ties go to the lowest process id.
type Priority struct{}

func (Priority) Algorithm() Algorithm { return PriorityAlgorithm }

func (Priority) Name() string { return "Non-Preemptive Priority" }

func (Priority) Simulate(set *core.ProcessSet) *core.SimulationResult {
	n := set.Len()
	result := core.NewSimulationResult(set)
	remaining := set.Bursts()
	clock, unfinished := 0, n

	for unfinished > 0 {
		idx := -1
		for i := 0; i < n; i++ {
			p := set.Process(i)
			if remaining[i] == 0 || p.Arrival > clock {
				continue
			}
			if idx == -1 || p.Priority < set.Process(idx).Priority {
				idx = i
			}
		}
		if idx == -1 {
			clock = idleUntil(set, clock, remaining)
			continue
		}

		p := set.Process(idx)
		start := max(clock, p.Arrival)
		result.Run(idx, start, start+p.Burst)
		clock = start + p.Burst
		remaining[idx] = 0
		result.Complete(idx, clock)
		unfinished--
	}
	return result
}
