package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/toposort/dfs"
	"github.com/katalvlaran/toposort/kahn"
	"github.com/katalvlaran/toposort/matrix"
	"github.com/katalvlaran/toposort/order"
)

var (
	graphPath string
	details   bool
	verbose   bool
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "toposort -f graph.yaml",
		Short: "Topologically sort a DAG given as a YAML adjacency matrix",
		Long: "toposort reads a square adjacency matrix from a YAML file (a list of\n" +
			"equal-length integer lists; the value at row 0, column 0 is the \"no edge\"\n" +
			"sentinel), runs Kahn's and the DFS stack-duration sorters, and reports\n" +
			"both orders together with their validity against the graph.",
		Args:         cobra.NoArgs,
		RunE:         newRunSort(ctx),
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVarP(&graphPath, "file", "f", "graph.yaml", "path to the YAML adjacency matrix")
	rootCmd.Flags().BoolVarP(&details, "details", "d", false, "print the per-vertex enter/exit/duration tables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunSort(ctx context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		g, err := loadMatrix(graphPath)
		if err != nil {
			return err
		}
		log.Debugf("loaded %d-vertex matrix from %s", g.Dim(), graphPath)

		report, err := buildReport(ctx, g, details)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report)

		return nil
	}
}

// loadMatrix reads and validates a YAML list-of-lists adjacency matrix.
func loadMatrix(path string) (matrix.Adjacency[int], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows [][]int
	if err = yaml.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	g := matrix.Adjacency[int](rows)
	if err = g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// buildReport runs both sorters, checks each result independently, and
// renders the report. With withDetails set it appends the timing table
// twice: once in vertex-index order, once in the DFS topological order.
func buildReport(ctx context.Context, g matrix.Adjacency[int], withDetails bool) (string, error) {
	kahnOrder, err := kahn.Sort(g, kahn.WithContext(ctx))
	if err != nil {
		return "", err
	}
	kahnOK, err := order.Valid(g, kahnOrder)
	if err != nil {
		return "", err
	}

	res, err := dfs.SortWithTimes(g, dfs.WithContext(ctx))
	if err != nil {
		return "", err
	}
	dfsOK, err := order.Valid(g, res.Order)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Kahn order          : %v  valid: %v\n", kahnOrder, kahnOK)
	fmt.Fprintf(&sb, "Stack-duration order: %v  valid: %v\n", res.Order, dfsOK)

	if withDetails {
		sb.WriteString("\nVertex timing details (per vertex index):\n")
		writeTimingTable(&sb, res, ascending(g.Dim()))
		sb.WriteString("\nVertex timing details in topological order:\n")
		writeTimingTable(&sb, res, res.Order)
	}

	return sb.String(), nil
}

// writeTimingTable renders one enter/exit/duration table over seq.
func writeTimingTable(sb *strings.Builder, res *dfs.Result, seq []int) {
	sb.WriteString("   v | enter | exit | duration\n")
	sb.WriteString("  ---+-------+------+---------\n")
	for _, v := range seq {
		fmt.Fprintf(sb, "  %2d | %5d | %4d | %8d\n", v, res.Enter[v], res.Exit[v], res.Duration[v])
	}
}

// ascending returns 0..n-1.
func ascending(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}

	return seq
}
