package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet(t *testing.T) *ProcessSet {
	t.Helper()
	set, err := NewProcessSet(nil, []int{0, 1}, []int{5, 3}, nil)
	require.NoError(t, err)
	return set
}

func TestSimulationResultRecordsTimes(t *testing.T) {
	result := NewSimulationResult(newTestSet(t))
	result.Run(0, 0, 2)
	result.Run(1, 2, 4)
	result.Run(0, 4, 6)
	result.Run(1, 6, 7)
	result.Complete(1, 7)
	result.Run(0, 7, 8)
	result.Complete(0, 8)

	assert.Equal(t, []int{8, 7}, result.Completion)
	assert.Equal(t, []int{8, 6}, result.Turnaround)
	assert.Equal(t, []int{3, 3}, result.Waiting)
	assert.Equal(t, []int{0, 1}, result.ResponseTimes())
	assert.Equal(t, 4, result.ContextSwitches())
	assert.Equal(t, 2, result.Trace[1].Duration())
}

func TestSimulationResultPanicsOnBrokenInvariants(t *testing.T) {
	result := NewSimulationResult(newTestSet(t))
	assert.Panics(t, func() { result.Run(0, 3, 3) })
	assert.Panics(t, func() { result.Complete(1, 3) })

	result.Run(0, 0, 4)
	assert.Panics(t, func() { result.Run(1, 2, 5) })
}

func TestMeasureCpu(t *testing.T) {
	set, err := NewProcessSet(nil, []int{2, 8}, []int{3, 1}, nil)
	require.NoError(t, err)
	result := NewSimulationResult(set)
	result.Run(0, 2, 5)
	result.Complete(0, 5)
	result.Run(1, 8, 9)
	result.Complete(1, 9)

	metric := MeasureCpu(result)
	assert.Equal(t, CpuMetric{TotalTime: 9, UtilizationTime: 4, IdleTime: 5}, metric)
	assert.InDelta(t, 4.0/9.0, metric.Utilization(), 1e-9)
	assert.InDelta(t, 2.0/9.0, metric.Throughput(2), 1e-9)
	assert.Zero(t, CpuMetric{}.Utilization())
}
