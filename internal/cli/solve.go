package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eulerpath/eulerian"
	"github.com/katalvlaran/eulerpath/graphio"
	"github.com/katalvlaran/eulerpath/multigraph"
)

func newSolveCmd() *cobra.Command {
	var (
		verify    bool
		noDefer   bool
		separator string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Print an Eulerian cycle or path of the graph in FILE",
		Long: `Solve reads an edge-list file and prints its Eulerian cycle or path as
vertex indices. If none exists, it prints why: too many odd-degree vertices,
no edges at all, or edges in more than one component.`,
		Example: `  eulerpath solve square.txt
  eulerpath solve --verify --format json graph.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := configFromContext(cmd.Context()).Solve
			flags := cmd.Flags()
			if flags.Changed("verify") {
				opts.Verify = verify
			}
			if flags.Changed("no-defer") {
				opts.DeferStart = !noDefer
			}
			if flags.Changed("separator") {
				opts.Separator = separator
			}
			if flags.Changed("format") {
				opts.Format = format
			}
			if err := validateFormat(opts.Format); err != nil {
				return err
			}

			return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check the walk against the input edges before printing")
	cmd.Flags().BoolVar(&noDefer, "no-defer", false, "always take the first edge during sub-circuit extraction")
	cmd.Flags().StringVar(&separator, "separator", " ", "separator between vertices in text output")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")

	return cmd
}

func runSolve(ctx context.Context, w io.Writer, path string, opts SolveConfig) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := graphio.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())
	if err := ctx.Err(); err != nil {
		return err
	}

	// The engine consumes g; keep an untouched copy for verification.
	var orig *multigraph.Graph
	if opts.Verify {
		orig = g.Clone()
	}

	sol, err := eulerian.Solve(g,
		eulerian.WithDeferStart(opts.DeferStart),
		eulerian.WithOnSubCircuit(func(start, length int) {
			logger.Debug("sub-circuit", "start", start, "length", length)
		}),
		eulerian.WithOnMerge(func(vertex int) {
			logger.Debug("merge", "vertex", vertex)
		}),
	)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}

	if opts.Verify && sol.Exists() {
		if err := eulerian.Verify(orig.Edges(), sol.Vertices, sol.Closed()); err != nil {
			return fmt.Errorf("solve %s: %w", path, err)
		}
		logger.Debug("walk verified", "edges", orig.EdgeCount())
	}

	prog.done("solved", "outcome", sol.Outcome, "classification", sol.Classification,
		"sub_circuits", sol.SubCircuits, "merges", sol.Merges)

	return writeSolution(w, sol, opts.Format, opts.Separator)
}
