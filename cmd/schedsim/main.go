// Command schedsim runs the scheduling policies over a workload file and
// prints a Gantt chart, process table and statistics for each of them.
//
//	schedsim -quantum 2 workload.yaml
//	schedsim -algorithm srt workload.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/render"
	"cpu-scheduling-simulator/internal/schedulers"
	"cpu-scheduling-simulator/internal/workload"
)

func main() {
	log.SetFlags(0)
	algorithm := flag.String("algorithm", "all", "policy to run: all, rr, sjn, srt or priority")
	quantum := flag.Int("quantum", 0, "round robin time quantum (default: from the workload file, then config)")
	configPath := flag.String("config", "", "config file (default ./config.yaml if present)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <workload.yaml|workload.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	w, err := workload.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if err := run(os.Stdout, w, schedulers.Algorithm(*algorithm), pickQuantum(flag.CommandLine, *quantum, w.Quantum, cfg.RoundRobinTimeQuantum), cfg.Parallel); err != nil {
		log.Fatal(err)
	}
}

// pickQuantum prefers an explicitly passed -quantum flag, then the workload
// file, then the configured default. Explicit non-positive values are kept so
// the simulation rejects them.
func pickQuantum(flags *flag.FlagSet, flagValue int, file *int, fallback int) int {
	set := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "quantum" {
			set = true
		}
	})
	if set {
		return flagValue
	}
	if file != nil {
		return *file
	}
	return fallback
}

func run(out io.Writer, w *workload.Workload, algorithm schedulers.Algorithm, quantum int, parallel bool) error {
	var outcomes []schedulers.Outcome
	if algorithm == "all" {
		var err error
		outcomes, err = schedulers.RunAll(w.Set, quantum, parallel)
		if err != nil {
			return err
		}
	} else {
		policy, err := schedulers.New(algorithm, quantum)
		if err != nil {
			return err
		}
		outcomes = []schedulers.Outcome{schedulers.Run(policy, w.Set)}
	}

	for i, outcome := range outcomes {
		title := fmt.Sprintf("%c) %s", 'a'+i, outcome.Policy.Name())
		render.Report(out, title, outcome.Result, outcome.Stats)
	}
	return nil
}
