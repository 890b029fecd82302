package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessSet(t *testing.T) {
	set, err := NewProcessSet([]string{"init", ""}, []int{0, 1, 2}, []int{5, 3, 1}, []int{2, 1, 3})
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	assert.Equal(t, Process{Id: 0, Name: "init", Arrival: 0, Burst: 5, Priority: 2}, set.Process(0))
	assert.Equal(t, "P1", set.Process(1).Name)
	assert.Equal(t, "P2", set.Process(2).Name)
	assert.Equal(t, []int{5, 3, 1}, set.Bursts())
}

func TestNewProcessSetWithoutPriorities(t *testing.T) {
	set, err := NewProcessSet(nil, []int{0, 0}, []int{1, 2}, nil)
	require.NoError(t, err)
	for _, p := range set.Processes() {
		assert.Zero(t, p.Priority)
	}
}

func TestNewProcessSetRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name       string
		names      []string
		arrivals   []int
		bursts     []int
		priorities []int
		contains   string
	}{
		{"empty", nil, nil, nil, nil, "at least one process"},
		{"burst count mismatch", nil, []int{0, 1}, []int{3}, nil, "2 processes"},
		{"priority count mismatch", nil, []int{0, 1}, []int{3, 4}, []int{1}, "priorities"},
		{"too many names", []string{"a", "b", "c"}, []int{0, 1}, []int{3, 4}, nil, "names"},
		{"negative arrival", nil, []int{0, -1}, []int{3, 4}, nil, "arrival time of P1"},
		{"zero burst", nil, []int{0, 1}, []int{3, 0}, nil, "burst time of P1"},
		{"negative burst", []string{"db"}, []int{0}, []int{-2}, nil, "burst time of db"},
		{"arrival past clock range", nil, []int{math.MaxInt - 1}, []int{5}, nil, "clock range"},
		{"bursts past clock range", nil, []int{0, 0}, []int{math.MaxInt, 1}, nil, "clock range"},
		{"late arrival with long bursts", nil, []int{0, math.MaxInt / 2}, []int{math.MaxInt / 2, 3}, nil, "clock range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := NewProcessSet(tc.names, tc.arrivals, tc.bursts, tc.priorities)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestNewProcessSetAcceptsClockUpperBound(t *testing.T) {
	set, err := NewProcessSet(nil, []int{math.MaxInt - 5}, []int{5}, nil)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-5, set.Process(0).Arrival)
}

func TestProcessSetIsNotAliased(t *testing.T) {
	arrivals := []int{0, 1}
	set, err := NewProcessSet(nil, arrivals, []int{2, 2}, nil)
	require.NoError(t, err)

	arrivals[1] = 7
	procs := set.Processes()
	procs[0].Burst = 100
	bursts := set.Bursts()
	bursts[1] = 0

	assert.Equal(t, 1, set.Process(1).Arrival)
	assert.Equal(t, 2, set.Process(0).Burst)
	assert.Equal(t, 2, set.Process(1).Burst)
}

func TestNextArrival(t *testing.T) {
	set, err := NewProcessSet(nil, []int{0, 4, 9}, []int{1, 1, 1}, nil)
	require.NoError(t, err)

	next, ok := set.NextArrival(0, []int{1, 1, 1})
	assert.True(t, ok)
	assert.Equal(t, 4, next)

	next, ok = set.NextArrival(4, []int{0, 0, 1})
	assert.True(t, ok)
	assert.Equal(t, 9, next)

	_, ok = set.NextArrival(4, []int{0, 0, 0})
	assert.False(t, ok)
}
