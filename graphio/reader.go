package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/eulerpath/multigraph"
)

var (
	// ErrFormat indicates a missing or malformed vertex-count header.
	ErrFormat = errors.New("graphio: invalid input format")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("graphio: vertex index out of range")

	// ErrNilGraph is returned by Write for a nil graph.
	ErrNilGraph = errors.New("graphio: graph is nil")
)

// maxVertexCount is the largest accepted header; vertex indices fit in an int32.
const maxVertexCount = math.MaxInt32

// Read parses the edge-list format from r into a new graph.
// Read does not close r.
func Read(r io.Reader) (*multigraph.Graph, error) {
	sc := bufio.NewScanner(r)
	line := 0

	// 1) Header: the first non-blank line is the vertex count.
	var header string
	for sc.Scan() {
		line++
		if header = strings.TrimSpace(sc.Text()); header != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if header == "" {
		return nil, fmt.Errorf("missing vertex count: %w", ErrFormat)
	}

	n, err := strconv.Atoi(header)
	if err != nil || n < 0 || n > maxVertexCount {
		return nil, fmt.Errorf("line %d: vertex count %q: %w", line, header, ErrFormat)
	}
	g, err := multigraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}

	// 2) Edges until EOF or the first line that is not two integers.
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		u, v, ok := parseEdge(text)
		if !ok {
			break
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("line %d: edge %d-%d with %d vertices: %w", line, u, v, n, ErrVertexOutOfRange)
		}
		if _, err = g.AddEdgePair(u, v); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return g, nil
}

// Load opens path and parses it with Read.
func Load(path string) (*multigraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// parseEdge splits text into exactly two integers.
func parseEdge(text string) (int, int, bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, false
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}

	return u, v, true
}
