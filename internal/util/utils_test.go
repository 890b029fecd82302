package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/core"
)

func TestCalculateStats(t *testing.T) {
	set, err := core.NewProcessSet(nil, []int{0, 1}, []int{5, 3}, nil)
	require.NoError(t, err)

	result := core.NewSimulationResult(set)
	result.Run(0, 0, 2)
	result.Run(1, 2, 4)
	result.Run(0, 4, 6)
	result.Run(1, 6, 7)
	result.Complete(1, 7)
	result.Run(0, 7, 8)
	result.Complete(0, 8)

	stats := CalculateStats(result)
	assert.Equal(t, 14, stats.TotalTurnaroundTime)
	assert.Equal(t, 7.0, stats.AverageTurnaroundTime)
	assert.Equal(t, 6, stats.TotalWaitingTime)
	assert.Equal(t, 3.0, stats.AverageWaitingTime)
	assert.Equal(t, 0.5, stats.AverageResponseTime)
	assert.Equal(t, 8, stats.TotalTime)
	assert.Zero(t, stats.IdleTime)
	assert.Equal(t, 1.0, stats.CpuUtilization)
	assert.Equal(t, 0.25, stats.CpuThroughput)
	assert.Equal(t, 4, stats.ContextSwitches)
}

func TestCalculateAverage(t *testing.T) {
	total, average := CalculateAverage([]int{3, 0, 8})
	assert.Equal(t, 11, total)
	assert.InDelta(t, 11.0/3.0, average, 1e-9)

	total, average = CalculateAverage(nil)
	assert.Zero(t, total)
	assert.Zero(t, average)
}
