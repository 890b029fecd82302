package schedulers

import (
	"fmt"

	"cpu-scheduling-simulator/internal/core"
)

// ShortestRemainingTime is preemptive scheduling re-evaluated every time
// unit. Ties go to the lowest process id.
type ShortestRemainingTime struct{}

func (ShortestRemainingTime) Algorithm() Algorithm { return ShortestRemainingTimeAlgorithm }

func (ShortestRemainingTime) Name() string { return "Shortest Remaining Time (SRT)" }

func (ShortestRemainingTime) Simulate(set *core.ProcessSet) *core.SimulationResult {
	n := set.Len()
	result := core.NewSimulationResult(set)
	remaining := set.Bursts()
	clock, unfinished := 0, n
	running, since := -1, 0

	for unfinished > 0 {
		current := -1
		for i := 0; i < n; i++ {
			if remaining[i] == 0 || set.Process(i).Arrival > clock {
				continue
			}
			if current == -1 || remaining[i] < remaining[current] {
				current = i
			}
		}
		if current == -1 {
			clock = idleUntil(set, clock, remaining)
			continue
		}

		if current != running {
			if running != -1 {
				result.Run(running, since, clock)
			}
			running, since = current, clock
		}

		remaining[current]--
		clock++
		if remaining[current] < 0 {
			panic(fmt.Sprintf("schedulers: negative remaining burst for pid %d", current))
		}
		if remaining[current] == 0 {
			// close the interval here so an idle gap never lands inside it
			result.Run(current, since, clock)
			running = -1
			result.Complete(current, clock)
			unfinished--
		}
	}
	return result
}
