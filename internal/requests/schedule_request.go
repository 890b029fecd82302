package requests

import "cpu-scheduling-simulator/internal/core"

// ScheduleRequest mirrors the simulator's input form: one entry per process
// in each array, indexed by process id.
type ScheduleRequest struct {
	Names        []string `json:"names"`
	ArrivalTimes []int    `json:"arrival_times"`
	BurstTimes   []int    `json:"burst_times"`
	Priorities   []int    `json:"priorities"`
	TimeQuantum  *int     `json:"time_quantum"`
}

func (r ScheduleRequest) ProcessSet() (*core.ProcessSet, error) {
	return core.NewProcessSet(r.Names, r.ArrivalTimes, r.BurstTimes, r.Priorities)
}

// Quantum returns the requested time quantum, or fallback when the request
// left it out. An explicit zero is returned as is and rejected later.
func (r ScheduleRequest) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}
