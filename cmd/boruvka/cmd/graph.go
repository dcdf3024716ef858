package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boruvka/bgraph"
	"github.com/katalvlaran/boruvka/pipeline"
)

// graphFlags are the --input/--gen-* flags shared by run and bench: load
// from a file if --input is set, otherwise generate a random graph.
type graphFlags struct {
	input       string
	remap       bool
	genVertices int
	genEdges    int
	seed        int64
}

func addGraphFlags(c *cobra.Command, f *graphFlags) {
	c.Flags().StringVar(&f.input, "input", "", "edge-list file to load (whitespace-separated \"u v w\" lines)")
	c.Flags().BoolVar(&f.remap, "remap", false, "compact sparse input vertex ids into a contiguous range")
	c.Flags().IntVar(&f.genVertices, "gen-vertices", 1000, "vertex count for a generated random graph (ignored with --input)")
	c.Flags().IntVar(&f.genEdges, "gen-edges", 5000, "edge count for a generated random graph (ignored with --input)")
	c.Flags().Int64Var(&f.seed, "seed", 0, "RNG seed for a generated random graph")
}

func (f *graphFlags) load() (*bgraph.Graph, error) {
	if f.input != "" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", f.input, err)
		}
		defer file.Close()

		var opts []bgraph.LoadOption
		if f.remap {
			opts = append(opts, bgraph.WithRemap())
		}
		return bgraph.Load(file, opts...)
	}

	return bgraph.Generate(f.genVertices, f.genEdges, bgraph.GenOptions{Seed: f.seed})
}

// pipelineOptions translates the loaded engine config into pipeline.Run
// options, so the CLI's --config file actually drives which chunking
// strategy the round driver uses, not just the worker count.
func pipelineOptions() []pipeline.Option {
	if cfg.Engine.ChunkStrategy == "dynamic" {
		return []pipeline.Option{pipeline.WithDynamicChunking(cfg.Engine.BatchSize)}
	}
	return nil
}
