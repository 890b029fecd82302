package core

import "fmt"

// ExecutionInterval records that a process held the CPU over [Start, End).
type ExecutionInterval struct {
	ProcessId int
	Start     int
	End       int
}

func (e ExecutionInterval) Duration() int {
	return e.End - e.Start
}

type SimulationResult struct {
	Completion []int
	Turnaround []int
	Waiting    []int
	Trace      []ExecutionInterval

	set *ProcessSet
}

func NewSimulationResult(set *ProcessSet) *SimulationResult {
	n := set.Len()
	return &SimulationResult{
		Completion: make([]int, n),
		Turnaround: make([]int, n),
		Waiting:    make([]int, n),
		Trace:      make([]ExecutionInterval, 0, n),
		set:        set,
	}
}

// Set returns the input the result was computed from.
func (r *SimulationResult) Set() *ProcessSet {
	return r.set
}

// Run appends an execution interval to the trace. Intervals must be
// non-empty and may not start before the previous one ended.
func (r *SimulationResult) Run(id, start, end int) {
	if end <= start {
		panic(fmt.Sprintf("core: empty execution interval [%d, %d) for pid %d", start, end, id))
	}
	if n := len(r.Trace); n > 0 && r.Trace[n-1].End > start {
		panic(fmt.Sprintf("core: interval [%d, %d) for pid %d overlaps previous interval ending at %d", start, end, id, r.Trace[n-1].End))
	}
	r.Trace = append(r.Trace, ExecutionInterval{ProcessId: id, Start: start, End: end})
}

// Complete records the completion time of a process and derives its
// turnaround and waiting times.
func (r *SimulationResult) Complete(id, clock int) {
	p := r.set.Process(id)
	if clock < p.Arrival+p.Burst {
		panic(fmt.Sprintf("core: pid %d completed at %d, before arrival %d + burst %d", id, clock, p.Arrival, p.Burst))
	}
	r.Completion[id] = clock
	r.Turnaround[id] = clock - p.Arrival
	r.Waiting[id] = r.Turnaround[id] - p.Burst
}

// ResponseTimes returns, per process, the delay between arrival and first
// dispatch.
func (r *SimulationResult) ResponseTimes() []int {
	n := len(r.Completion)
	out := make([]int, n)
	seen := make([]bool, n)
	for _, e := range r.Trace {
		if seen[e.ProcessId] {
			continue
		}
		seen[e.ProcessId] = true
		out[e.ProcessId] = e.Start - r.set.Process(e.ProcessId).Arrival
	}
	return out
}

// ContextSwitches counts adjacent trace intervals that belong to different
// processes.
func (r *SimulationResult) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(r.Trace); i++ {
		if r.Trace[i].ProcessId != r.Trace[i-1].ProcessId {
			switches++
		}
	}
	return switches
}
