package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/eulerpath/multigraph"
)

// Write encodes g in the edge-list format: the vertex count, then one
// "u v" line per live edge in insertion order.
func Write(w io.Writer, g *multigraph.Graph) error {
	if g == nil {
		return fmt.Errorf("write: %w", ErrNilGraph)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, g.VertexCount())
	for _, e := range g.Edges() {
		fmt.Fprintln(bw, e.U, e.V)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

// Save writes g to path, creating or truncating the file.
func Save(path string, g *multigraph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
