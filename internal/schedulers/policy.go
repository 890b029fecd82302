package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduling-simulator/internal/core"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

// Algorithm is the tag a caller uses to pick a policy.
type Algorithm string

const (
	RoundRobinAlgorithm            Algorithm = "rr"
	ShortestJobNextAlgorithm       Algorithm = "sjn"
	ShortestRemainingTimeAlgorithm Algorithm = "srt"
	PriorityAlgorithm              Algorithm = "priority"
)

// Policy simulates one scheduling discipline over a fixed process set.
// Implementations keep all working state local to Simulate, so a single
// Policy value can be used from several goroutines.
type Policy interface {
	Algorithm() Algorithm
	Name() string
	Simulate(set *core.ProcessSet) *core.SimulationResult
}

// New returns the policy registered under algorithm. quantum is only
// validated and used for round robin.
func New(algorithm Algorithm, quantum int) (Policy, error) {
	switch algorithm {
	case RoundRobinAlgorithm:
		rr, err := NewRoundRobin(quantum)
		if err != nil {
			return nil, err
		}
		return rr, nil
	case ShortestJobNextAlgorithm:
		return ShortestJobNext{}, nil
	case ShortestRemainingTimeAlgorithm:
		return ShortestRemainingTime{}, nil
	case PriorityAlgorithm:
		return Priority{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// Available lists the algorithm tags in display order.
func Available() []Algorithm {
	return []Algorithm{
		RoundRobinAlgorithm,
		ShortestJobNextAlgorithm,
		ShortestRemainingTimeAlgorithm,
		PriorityAlgorithm,
	}
}

// idleUntil returns the clock value at which the next pending process
// arrives. Running out of arrivals while work remains is a bug in the caller.
func idleUntil(set *core.ProcessSet, clock int, remaining []int) int {
	next, ok := set.NextArrival(clock, remaining)
	if !ok {
		panic(fmt.Sprintf("schedulers: no runnable process at clock %d although work remains", clock))
	}
	return next
}
