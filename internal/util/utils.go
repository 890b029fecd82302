package util

import "cpu-scheduling-simulator/internal/core"

// Stats is the aggregate view of one simulation result.
type Stats struct {
	TotalTurnaroundTime   int
	AverageTurnaroundTime float64
	TotalWaitingTime      int
	AverageWaitingTime    float64
	AverageResponseTime   float64

	TotalTime       int
	IdleTime        int
	CpuUtilization  float64
	CpuThroughput   float64
	ContextSwitches int
}

// CalculateStats reduces a simulation result. It has no side effects.
func CalculateStats(result *core.SimulationResult) Stats {
	var stats Stats
	stats.TotalTurnaroundTime, stats.AverageTurnaroundTime = CalculateAverage(result.Turnaround)
	stats.TotalWaitingTime, stats.AverageWaitingTime = CalculateAverage(result.Waiting)
	_, stats.AverageResponseTime = CalculateAverage(result.ResponseTimes())

	cpu := core.MeasureCpu(result)
	stats.TotalTime = cpu.TotalTime
	stats.IdleTime = cpu.IdleTime
	stats.CpuUtilization = cpu.Utilization()
	stats.CpuThroughput = cpu.Throughput(len(result.Completion))
	stats.ContextSwitches = result.ContextSwitches()
	return stats
}

// CalculateAverage returns the sum and mean of values. The mean of an empty
// slice is 0.
func CalculateAverage(values []int) (total int, average float64) {
	for _, v := range values {
		total += v
	}
	if len(values) == 0 {
		return total, 0
	}
	return total, float64(total) / float64(len(values))
}
