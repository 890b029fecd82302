package responses

type ProcessResponse struct {
	ProcessId      int    `json:"process_id"`
	Name           string `json:"name"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
}

type IntervalResponse struct {
	ProcessId int    `json:"process_id"`
	Name      string `json:"name"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ScheduleResponse struct {
	RunId                 string             `json:"run_id"`
	Algorithm             string             `json:"algorithm"`
	Name                  string             `json:"name"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	TotalWaitingTime      int                `json:"total_waiting_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	TotalTurnAroundTime   int                `json:"total_turn_around_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	ContextSwitches       int                `json:"context_switches"`
	Details               []ProcessResponse  `json:"details"`
	Gantt                 []IntervalResponse `json:"gantt"`
}

type AllResponse struct {
	RunId   string             `json:"run_id"`
	Results []ScheduleResponse `json:"results"`
}
