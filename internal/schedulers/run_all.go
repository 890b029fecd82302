package schedulers

import (
	"log"
	"sync"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/util"
)

// Outcome pairs a policy's result with its aggregated statistics.
type Outcome struct {
	Policy Policy
	Result *core.SimulationResult
	Stats  util.Stats
}

func Run(policy Policy, set *core.ProcessSet) Outcome {
	log.Printf("running %s algorithm on %d processes", policy.Algorithm(), set.Len())
	result := policy.Simulate(set)
	return Outcome{
		Policy: policy,
		Result: result,
		Stats:  util.CalculateStats(result),
	}
}

// RunAll simulates every available algorithm over the same set. The quantum
// is validated before any policy runs. Outcomes are returned in Available()
// order whether or not they were computed in parallel.
func RunAll(set *core.ProcessSet, quantum int, parallel bool) ([]Outcome, error) {
	algorithms := Available()
	policies := make([]Policy, len(algorithms))
	for i, algorithm := range algorithms {
		policy, err := New(algorithm, quantum)
		if err != nil {
			return nil, err
		}
		policies[i] = policy
	}

	outcomes := make([]Outcome, len(policies))
	if !parallel {
		for i, policy := range policies {
			outcomes[i] = Run(policy, set)
		}
		return outcomes, nil
	}

	// a panic in a worker is re-raised on the calling goroutine
	panics := make([]any, len(policies))
	var wg sync.WaitGroup
	wg.Add(len(policies))
	for i, policy := range policies {
		go func(i int, policy Policy) {
			defer wg.Done()
			defer func() { panics[i] = recover() }()
			outcomes[i] = Run(policy, set)
		}(i, policy)
	}
	wg.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
	return outcomes, nil
}
