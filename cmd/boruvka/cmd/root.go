// Package cmd implements the boruvka CLI's subcommands via cobra,
// grounded on junjiewwang-perf-analysis/cmd/cli/cmd: a persistent-flag
// root command that builds a shared logger in PersistentPreRunE, one
// file per subcommand, and a BinName helper reused in usage examples.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boruvka/config"
	"github.com/katalvlaran/boruvka/logx"
)

var (
	verbose    bool
	configPath string

	cfg    *config.Config
	logger logx.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boruvka",
	Short: "A parallel Borůvka minimum-spanning-tree engine",
	Long: `boruvka computes the minimum spanning forest of a weighted
undirected graph using a data-parallel Borůvka's algorithm: a
lock-free union-find forest shared by a persistent worker pool that
runs five phases — MinEdge, Reduce, Contract, FilterEdges,
FilterVertices — per round, until no component has a cross-component
edge left to contract.`,
	PersistentPreRunE: func(command *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if verbose {
			loaded.Log.Level = "debug"
		}
		cfg = loaded
		logger = logx.New(logx.ParseLevel(cfg.Log.Level), os.Stderr)
		return nil
	},
}

// Execute runs the root command, exiting 1 on any returned error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a boruvka.yaml config file (optional)")

	binName := BinName()
	rootCmd.Example = `  # Run on a generated random graph
  ` + binName + ` run --gen-vertices 1000 --gen-edges 5000 --workers 8

  # Run on an edge-list file
  ` + binName + ` run --input graph.txt --workers 4

  # Sweep the same graph across worker counts
  ` + binName + ` bench --gen-vertices 100000 --gen-edges 1000000 --seed 42 --workers-list 1,2,4,8,16`
}

// BinName returns the base name of the current executable, used to make
// usage examples match however the binary was actually invoked.
func BinName() string {
	return filepath.Base(os.Args[0])
}
