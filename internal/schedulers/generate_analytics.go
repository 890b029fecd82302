package schedulers

import (
	"cpu-scheduling-simulator/internal/responses"
)

func GenerateResponse(runId string, outcome Outcome) responses.ScheduleResponse {
	stats := outcome.Stats
	return responses.ScheduleResponse{
		RunId:                 runId,
		Algorithm:             string(outcome.Policy.Algorithm()),
		Name:                  outcome.Policy.Name(),
		TotalTime:             stats.TotalTime,
		IdleTime:              stats.IdleTime,
		TotalWaitingTime:      stats.TotalWaitingTime,
		AverageWaitingTime:    stats.AverageWaitingTime,
		TotalTurnAroundTime:   stats.TotalTurnaroundTime,
		AverageTurnAroundTime: stats.AverageTurnaroundTime,
		AverageResponseTime:   stats.AverageResponseTime,
		CpuUtilization:        stats.CpuUtilization,
		CpuThroughput:         stats.CpuThroughput,
		ContextSwitches:       stats.ContextSwitches,
		Details:               generateProcessDetails(outcome),
		Gantt:                 generateGantt(outcome),
	}
}

func GenerateAllResponse(runId string, outcomes []Outcome) responses.AllResponse {
	results := make([]responses.ScheduleResponse, len(outcomes))
	for i, outcome := range outcomes {
		results[i] = GenerateResponse(runId, outcome)
	}
	return responses.AllResponse{RunId: runId, Results: results}
}

func generateProcessDetails(outcome Outcome) []responses.ProcessResponse {
	result := outcome.Result
	responseTimes := result.ResponseTimes()
	details := make([]responses.ProcessResponse, 0, len(result.Completion))
	for _, p := range result.Set().Processes() {
		details = append(details, responses.ProcessResponse{
			ProcessId:      p.Id,
			Name:           p.Name,
			ArrivalTime:    p.Arrival,
			BurstTime:      p.Burst,
			Priority:       p.Priority,
			CompletionTime: result.Completion[p.Id],
			TurnAroundTime: result.Turnaround[p.Id],
			WaitingTime:    result.Waiting[p.Id],
			ResponseTime:   responseTimes[p.Id],
		})
	}
	return details
}

func generateGantt(outcome Outcome) []responses.IntervalResponse {
	set := outcome.Result.Set()
	gantt := make([]responses.IntervalResponse, len(outcome.Result.Trace))
	for i, e := range outcome.Result.Trace {
		gantt[i] = responses.IntervalResponse{
			ProcessId: e.ProcessId,
			Name:      set.Process(e.ProcessId).Name,
			Start:     e.Start,
			End:       e.End,
		}
	}
	return gantt
}
