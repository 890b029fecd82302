package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/schedulers"
	"cpu-scheduling-simulator/internal/workload"
)

func loadTestWorkload(t *testing.T) *workload.Workload {
	t.Helper()
	w, err := workload.Load("../../testdata/workload.yaml")
	require.NoError(t, err)
	return w
}

func TestRunAll(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, loadTestWorkload(t), "all", 2, true))

	report := out.String()
	for _, title := range []string{
		"a) Round Robin",
		"b) Shortest Job Next (SJN)",
		"c) Shortest Remaining Time (SRT)",
		"d) Non-Preemptive Priority",
	} {
		assert.Contains(t, report, title)
	}
	assert.Equal(t, 4, strings.Count(report, "Statistics summary"))
}

func TestRunSingleAlgorithm(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, loadTestWorkload(t), schedulers.PriorityAlgorithm, 0, false))
	assert.Contains(t, out.String(), "a) Non-Preemptive Priority")
	assert.NotContains(t, out.String(), "Round Robin")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, loadTestWorkload(t), "fifo", 2, false)
	assert.True(t, errors.Is(err, schedulers.ErrUnknownAlgorithm))

	err = run(&out, loadTestWorkload(t), "all", -1, false)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
	assert.Empty(t, out.String())
}

func quantumFlags(t *testing.T, args ...string) (*flag.FlagSet, int) {
	t.Helper()
	flags := flag.NewFlagSet("schedsim", flag.ContinueOnError)
	quantum := flags.Int("quantum", 0, "")
	require.NoError(t, flags.Parse(args))
	return flags, *quantum
}

func TestPickQuantum(t *testing.T) {
	four := 4
	zero := 0

	flags, q := quantumFlags(t)
	assert.Equal(t, 4, pickQuantum(flags, q, &four, 2))
	assert.Equal(t, 0, pickQuantum(flags, q, &zero, 2))
	assert.Equal(t, 2, pickQuantum(flags, q, nil, 2))

	flags, q = quantumFlags(t, "-quantum", "3")
	assert.Equal(t, 3, pickQuantum(flags, q, &four, 2))

	flags, q = quantumFlags(t, "-quantum", "0")
	assert.Equal(t, 0, pickQuantum(flags, q, &four, 2))
}

func TestRunRejectsExplicitZeroQuantum(t *testing.T) {
	flags, q := quantumFlags(t, "-quantum", "0")
	w := loadTestWorkload(t)

	var out bytes.Buffer
	err := run(&out, w, "all", pickQuantum(flags, q, w.Quantum, 2), false)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
	assert.Empty(t, out.String())
}

func TestCSVAndYAMLWorkloadsAgree(t *testing.T) {
	fromCSV, err := workload.Load("../../testdata/workload.csv")
	require.NoError(t, err)
	fromYAML := loadTestWorkload(t)
	require.Equal(t, fromYAML.Set.Processes(), fromCSV.Set.Processes())

	var csvOut, yamlOut bytes.Buffer
	require.NoError(t, run(&csvOut, fromCSV, "all", 2, false))
	require.NoError(t, run(&yamlOut, fromYAML, "all", 2, true))
	assert.Equal(t, yamlOut.String(), csvOut.String())
}
