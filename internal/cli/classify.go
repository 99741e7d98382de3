package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eulerpath/eulerian"
	"github.com/katalvlaran/eulerpath/graphio"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE",
		Short: "Print the degree-parity class of the graph in FILE",
		Long: `Classify reports whether the graph has no, two, or more than two odd-degree
vertices (or no edges at all), together with the number of connected
components that carry edges. The graph is not traversed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, cmd.OutOrStdout(), args[0])
		},
	}
}

func runClassify(cmd *cobra.Command, w io.Writer, path string) error {
	logger := loggerFromContext(cmd.Context())

	g, err := graphio.Load(path)
	if err != nil {
		return err
	}
	c, err := eulerian.Classify(g)
	if err != nil {
		return fmt.Errorf("classify %s: %w", path, err)
	}
	components := g.Components()
	logger.Debug("classified", "path", path, "kind", c.Kind())

	verdict := styleFailure.Render("no eulerian walk")
	switch c.(type) {
	case eulerian.NoOdd, eulerian.TwoOdd:
		if components == 1 {
			verdict = styleSuccess.Render("eulerian walk exists")
		}
	}

	lines := []string{
		field("classification", c),
		field("vertices", g.VertexCount()),
		field("edges", g.EdgeCount()),
		field("components", components),
		verdict,
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
