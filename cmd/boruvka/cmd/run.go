package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boruvka/pipeline"
)

var (
	runFlags   graphFlags
	runWorkers int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the minimum spanning forest of one graph",
	RunE: func(command *cobra.Command, args []string) error {
		workers := runWorkers
		if workers == 0 {
			workers = cfg.Engine.Workers
		}

		g, err := runFlags.load()
		if err != nil {
			return err
		}
		logger.Info("loaded graph: vertices=%d edges=%d workers=%d", g.OriginalVertexCount, g.EdgeCount(), workers)

		result, err := pipeline.Run(g, workers, pipelineOptions()...)
		if err != nil {
			return fmt.Errorf("running pipeline: %w", err)
		}

		logger.Info("completed in %d rounds", len(result.Rounds))
		for _, r := range result.Rounds {
			logger.Debug("round %d: active_vertices=%d active_edges=%d contracted=%d",
				r.Round, r.ActiveVertices, r.ActiveEdges, r.ContractedEdges)
		}

		fmt.Printf("mst_edges=%d total_weight=%.4f rounds=%d\n",
			len(result.MSTEdges), result.TotalWeight, len(result.Rounds))
		return nil
	},
}

func init() {
	addGraphFlags(runCmd, &runFlags)
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "worker count (0 defers to the config file's engine.workers, which itself defaults to GOMAXPROCS)")
	rootCmd.AddCommand(runCmd)
}
