// Package workload reads process sets from yaml or csv files.
package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduling-simulator/internal/core"
)

// Workload is a validated process set plus the time quantum stored with it,
// if any. A nil Quantum means the file did not set one.
type Workload struct {
	Set     *core.ProcessSet
	Quantum *int
}

type fileProcess struct {
	Name     string `yaml:"name"`
	Arrival  int    `yaml:"arrival"`
	Burst    int    `yaml:"burst"`
	Priority int    `yaml:"priority"`
}

type file struct {
	TimeQuantum *int          `yaml:"time_quantum"`
	Processes   []fileProcess `yaml:"processes"`
}

// Load picks the decoder from the file extension: .yaml and .yml are read
// as yaml, everything else as csv.
func Load(path string) (*Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadCSV(f)
	}
}

func LoadYAML(r io.Reader) (*Workload, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml workload: %w", err)
	}
	n := len(doc.Processes)
	names := make([]string, n)
	arrivals := make([]int, n)
	bursts := make([]int, n)
	priorities := make([]int, n)
	for i, p := range doc.Processes {
		names[i], arrivals[i], bursts[i], priorities[i] = p.Name, p.Arrival, p.Burst, p.Priority
	}
	set, err := core.NewProcessSet(names, arrivals, bursts, priorities)
	if err != nil {
		return nil, err
	}
	return &Workload{Set: set, Quantum: doc.TimeQuantum}, nil
}

// LoadCSV reads rows of name,burst,arrival[,priority]. An empty name falls
// back to the default process name.
func LoadCSV(r io.Reader) (*Workload, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading csv: %v", core.ErrInvalidInput, err)
	}

	names := make([]string, len(rows))
	arrivals := make([]int, len(rows))
	bursts := make([]int, len(rows))
	priorities := make([]int, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: csv row %d has %d fields, want 3 or 4", core.ErrInvalidInput, i+1, len(row))
		}
		names[i] = row[0]
		if bursts[i], err = parseField(row[1], "burst", i); err != nil {
			return nil, err
		}
		if arrivals[i], err = parseField(row[2], "arrival", i); err != nil {
			return nil, err
		}
		if len(row) == 4 {
			if priorities[i], err = parseField(row[3], "priority", i); err != nil {
				return nil, err
			}
		}
	}
	set, err := core.NewProcessSet(names, arrivals, bursts, priorities)
	if err != nil {
		return nil, err
	}
	return &Workload{Set: set}, nil
}

func parseField(s, field string, row int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: csv row %d: %s %q is not an integer", core.ErrInvalidInput, row+1, field, s)
	}
	return v, nil
}
