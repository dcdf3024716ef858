// Command boruvka runs the parallel Borůvka MST engine from the command
// line: load or generate a graph, compute its minimum spanning forest,
// and optionally sweep the computation across several worker counts.
package main

import "github.com/katalvlaran/boruvka/cmd/boruvka/cmd"

func main() {
	cmd.Execute()
}
