package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regraph/acyclic"
	"github.com/katalvlaran/regraph/dijkstra"
	"github.com/katalvlaran/regraph/graph"
)

// pathSet is the query surface shared by acyclic.Paths and dijkstra.Result.
type pathSet interface {
	DistTo(v int) float64
	HasPathTo(v int) bool
	PathTo(v int) []graph.Edge
}

func newPathsCmd() *cobra.Command {
	var longest, useDijkstra bool

	cmd := &cobra.Command{
		Use:   "paths <file> <source>",
		Short: "Print single-source paths of an edge-weighted digraph",
		Long: `The paths command reads "V E" followed by E "from to weight" records and
prints the path from source to every vertex. By default the graph must be a
DAG and shortest paths are relaxed in topological order; --longest computes
longest paths instead, --dijkstra accepts cycles but not negative weights.

Example:
  regraph paths tinyEWDAG.txt 5
  regraph paths --longest tinyEWDAG.txt 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if longest && useDijkstra {
				return fmt.Errorf("--longest and --dijkstra are mutually exclusive")
			}
			s, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("source %q: %w", args[1], err)
			}
			g, err := readWeighted(args[0])
			if err != nil {
				return err
			}

			var (
				ps   pathSet
				kind string
			)
			switch {
			case useDijkstra:
				ps, err = dijkstra.Dijkstra(g, s)
				kind = "shortest (dijkstra)"
			case longest:
				ps, err = acyclic.LongestPaths(g, s)
				kind = "longest"
			default:
				ps, err = acyclic.ShortestPaths(g, s)
				kind = "shortest"
			}
			if err != nil {
				return err
			}
			printPaths(cmd.OutOrStdout(), kind, g.V(), s, ps)

			return nil
		},
	}
	cmd.Flags().BoolVar(&longest, "longest", false, "Compute longest paths")
	cmd.Flags().BoolVar(&useDijkstra, "dijkstra", false, "Use Dijkstra's algorithm")

	return cmd
}

func readWeighted(path string) (*graph.EdgeWeightedDigraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graph.ReadEdgeWeightedDigraph(f)
}

func printPaths(w io.Writer, kind string, v, s int, ps pathSet) {
	fmt.Fprintf(w, "%s paths from %d\n", kind, s)
	for t := range v {
		if !ps.HasPathTo(t) {
			fmt.Fprintf(w, "%d to %d: no path\n", s, t)
			continue
		}
		fmt.Fprintf(w, "%d to %d (%.2f):", s, t, ps.DistTo(t))
		for _, e := range ps.PathTo(t) {
			fmt.Fprintf(w, "  %s", e)
		}
		fmt.Fprintln(w)
	}
}
