package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boruvka/pipeline"
)

var (
	benchFlags       graphFlags
	benchWorkerList  string
	benchRepetitions int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Sweep the same graph across a list of worker counts",
	Long: `bench loads or generates one graph, snapshots it, and re-runs
the pipeline once per worker count in --workers-list, restoring an
independent copy of the original graph before each run so no run is
affected by a previous round's in-place mutation.`,
	RunE: func(command *cobra.Command, args []string) error {
		workerCounts, err := parseWorkerList(benchWorkerList)
		if err != nil {
			return err
		}

		g, err := benchFlags.load()
		if err != nil {
			return err
		}
		snap := g.Snapshot()
		logger.Info("loaded graph: vertices=%d edges=%d", g.OriginalVertexCount, g.EdgeCount())

		fmt.Printf("%-8s %-10s %-14s %-10s\n", "workers", "rounds", "total_weight", "elapsed")
		for _, w := range workerCounts {
			var last time.Duration
			var rounds int
			var weight float64
			for rep := 0; rep < benchRepetitions; rep++ {
				restored := snap.Restore()
				start := time.Now()
				result, err := pipeline.Run(restored, w, pipelineOptions()...)
				if err != nil {
					return fmt.Errorf("workers=%d: %w", w, err)
				}
				last = time.Since(start)
				rounds = len(result.Rounds)
				weight = result.TotalWeight
			}
			fmt.Printf("%-8d %-10d %-14.4f %-10s\n", w, rounds, weight, last)
		}
		return nil
	},
}

func parseWorkerList(raw string) ([]int, error) {
	fields := strings.Split(raw, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid --workers-list entry %q: must be a positive integer", f)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--workers-list must name at least one worker count")
	}
	return out, nil
}

func init() {
	addGraphFlags(benchCmd, &benchFlags)
	benchCmd.Flags().StringVar(&benchWorkerList, "workers-list", "1,2,4,8,16", "comma-separated worker counts to sweep")
	benchCmd.Flags().IntVar(&benchRepetitions, "repetitions", 1, "times to repeat each worker count (only the last repetition's timing is reported)")
	rootCmd.AddCommand(benchCmd)
}
