package core

// CpuMetric summarises how the single simulated CPU spent the run, from
// time 0 up to the last completion.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

func MeasureCpu(result *SimulationResult) CpuMetric {
	var metric CpuMetric
	for _, e := range result.Trace {
		metric.UtilizationTime += e.Duration()
		if e.End > metric.TotalTime {
			metric.TotalTime = e.End
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}

// Utilization is the busy fraction of TotalTime.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}
