package core

import (
	"fmt"
	"math"
	"strconv"
)

// Process is a single job handed to the simulator. It is never mutated once
// it belongs to a ProcessSet.
type Process struct {
	Id       int
	Name     string
	Arrival  int
	Burst    int
	Priority int
}

// ProcessSet is the immutable input of every scheduling policy.
type ProcessSet struct {
	processes []Process
}

// NewProcessSet validates the parallel input arrays and builds a ProcessSet.
// n is taken from arrivals. names may be shorter than n, the missing ones
// default to "P{index}". priorities may be empty, in which case every process
// gets priority 0.
func NewProcessSet(names []string, arrivals, bursts, priorities []int) (*ProcessSet, error) {
	n := len(arrivals)
	if n == 0 {
		return nil, fmt.Errorf("%w: at least one process is required", ErrInvalidInput)
	}
	if len(bursts) != n {
		return nil, fmt.Errorf("%w: got %d burst times for %d processes", ErrInvalidInput, len(bursts), n)
	}
	if len(priorities) != 0 && len(priorities) != n {
		return nil, fmt.Errorf("%w: got %d priorities for %d processes", ErrInvalidInput, len(priorities), n)
	}
	if len(names) > n {
		return nil, fmt.Errorf("%w: got %d names for %d processes", ErrInvalidInput, len(names), n)
	}

	// Every schedule ends by max(arrival) + sum(burst); keep that on the clock.
	maxArrival, total := 0, 0
	processes := make([]Process, n)
	for i := 0; i < n; i++ {
		name := DefaultName(i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		if arrivals[i] < 0 {
			return nil, fmt.Errorf("%w: arrival time of %s must not be negative, got %d", ErrInvalidInput, name, arrivals[i])
		}
		if bursts[i] <= 0 {
			return nil, fmt.Errorf("%w: burst time of %s must be positive, got %d", ErrInvalidInput, name, bursts[i])
		}
		if bursts[i] > math.MaxInt-total {
			return nil, fmt.Errorf("%w: total burst time exceeds the simulated clock range", ErrInvalidInput)
		}
		total += bursts[i]
		maxArrival = max(maxArrival, arrivals[i])
		priority := 0
		if len(priorities) != 0 {
			priority = priorities[i]
		}
		processes[i] = Process{
			Id:       i,
			Name:     name,
			Arrival:  arrivals[i],
			Burst:    bursts[i],
			Priority: priority,
		}
	}
	if maxArrival > math.MaxInt-total {
		return nil, fmt.Errorf("%w: arrival and burst times exceed the simulated clock range", ErrInvalidInput)
	}
	return &ProcessSet{processes: processes}, nil
}

func DefaultName(index int) string {
	return "P" + strconv.Itoa(index)
}

func (s *ProcessSet) Len() int {
	return len(s.processes)
}

func (s *ProcessSet) Process(id int) Process {
	return s.processes[id]
}

// Processes returns a copy of the set's processes ordered by id.
func (s *ProcessSet) Processes() []Process {
	out := make([]Process, len(s.processes))
	copy(out, s.processes)
	return out
}

// Bursts returns a fresh remaining-burst array, one entry per process.
func (s *ProcessSet) Bursts() []int {
	out := make([]int, len(s.processes))
	for i, p := range s.processes {
		out[i] = p.Burst
	}
	return out
}

// NextArrival reports the earliest arrival after clock among the processes
// that still have remaining work. ok is false when there is none.
func (s *ProcessSet) NextArrival(clock int, remaining []int) (next int, ok bool) {
	for i, p := range s.processes {
		if remaining[i] <= 0 || p.Arrival <= clock {
			continue
		}
		if !ok || p.Arrival < next {
			next, ok = p.Arrival, true
		}
	}
	return next, ok
}
