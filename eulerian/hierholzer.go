package eulerian

import (
	"fmt"

	"github.com/katalvlaran/eulerpath/multigraph"
	"github.com/katalvlaran/eulerpath/walk"
)

// FindCircuit runs Hierholzer's algorithm on g, consuming its edges.
//
// Steps:
//  1. TwoOdd graphs are reduced to an all-even graph with ReduceToCycle.
//  2. A seed sub-circuit is extracted at c's max-degree vertex.
//  3. The walk is scanned front to back. Whenever the current element's vertex
//     still has edges, a sub-circuit is extracted there and spliced in place of
//     the element; scanning resumes at the sub-circuit's first element.
//  4. If edges remain once the scan falls off the end, the graph is
//     disconnected: Exists is false and the partial walk is dropped.
//
// c must come from Classify on the same, untouched graph.
// Errors: ErrGraphNil, ErrNoCandidate, ErrStaleClassification.
// Complexity: O(V + E) amortized; each edge is traversed and removed once.
func FindCircuit(g *multigraph.Graph, c Classification, opts ...Option) (Result, error) {
	res := Result{Synthetic: -1}
	if g == nil {
		return res, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var seed int
	switch c := c.(type) {
	case NoOdd:
		seed = c.MaxDegreeVertex
	case TwoOdd:
		seed = c.MaxDegreeVertex
		// Validate the seed before the graph grows, so errors leave g untouched.
		if err := checkSeed(g, seed); err != nil {
			return res, err
		}
		synthetic, err := ReduceToCycle(g, c)
		if err != nil {
			return res, fmt.Errorf("FindCircuit: %w", err)
		}
		res.Synthetic = synthetic
	case nil:
		return res, fmt.Errorf("FindCircuit: nil classification: %w", ErrStaleClassification)
	default:
		return res, fmt.Errorf("FindCircuit(%s): %w", c.Kind(), ErrNoCandidate)
	}
	if err := checkSeed(g, seed); err != nil {
		return res, err
	}

	e := &engine{g: g, opts: o}
	path := e.extract(seed)
	res.SubCircuits = 1

	for el := path.Front(); el != nil; {
		if g.Degree(el.Vertex) == 0 {
			el = el.Next()
			continue
		}

		sub := e.extract(el.Vertex)
		res.SubCircuits++

		// The sub-circuit starts and ends at el.Vertex, so el itself is
		// replaced rather than kept; el is detached afterwards.
		vertex := el.Vertex
		first, err := path.Splice(el, sub)
		if err != nil {
			panic(fmt.Sprintf("eulerian: invariant: splice at vertex %d: %v", vertex, err))
		}
		res.Merges++
		if o.OnMerge != nil {
			o.OnMerge(vertex)
		}
		el = first
	}

	if g.HasAnyEdges() {
		return res, nil
	}
	res.Exists = true
	res.Cycle = path

	return res, nil
}

// ExtractSubCircuit walks from start, removing every traversed edge pair,
// until it is back at start with no edges left there. The returned path
// begins and ends at start; a start without edges yields the single element
// [start].
//
// With deferStart, an edge that leads back to start is skipped in favour of
// the next edge when the current vertex has more than one edge left.
//
// Every vertex must have even degree on entry. A walk that gets stuck away
// from start means this precondition was broken and panics.
// Complexity: O(length of the sub-circuit).
func ExtractSubCircuit(g *multigraph.Graph, start int, deferStart bool) *walk.Path {
	e := &engine{g: g, opts: Options{DeferStart: deferStart}}

	return e.extract(start)
}

// engine bundles the graph being consumed with resolved options.
type engine struct {
	g    *multigraph.Graph
	opts Options
}

// extract builds one sub-circuit starting at start.
func (e *engine) extract(start int) *walk.Path {
	g := e.g
	sub := walk.New(start)

	for cur := start; !(cur == start && g.Degree(cur) == 0); {
		id, ok := g.FirstEdge(cur)
		if !ok {
			panic(fmt.Sprintf("eulerian: invariant: sub-circuit from %d stuck at %d", start, cur))
		}

		// Hold off returning to start while another edge is available.
		if e.opts.DeferStart && g.Target(id) == start && g.Degree(cur) > 1 {
			if next, ok := g.NextEdge(id); ok {
				id = next
			}
		}

		next := g.Target(id)
		if err := g.RemoveEdge(id); err != nil {
			panic(fmt.Sprintf("eulerian: invariant: %v", err))
		}
		sub.Append(next)
		cur = next
	}

	if e.opts.OnSubCircuit != nil {
		e.opts.OnSubCircuit(start, sub.Len())
	}

	return sub
}

// checkSeed rejects a seed that is not a vertex with edges in g.
func checkSeed(g *multigraph.Graph, seed int) error {
	if seed < 0 || seed >= g.VertexCount() || g.Degree(seed) == 0 {
		return fmt.Errorf("FindCircuit: seed vertex %d: %w", seed, ErrStaleClassification)
	}

	return nil
}
