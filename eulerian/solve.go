package eulerian

import (
	"fmt"

	"github.com/katalvlaran/eulerpath/multigraph"
)

// Outcome is the user-facing verdict of Solve.
type Outcome int

const (
	// OutcomeCycle: an Eulerian cycle was found.
	OutcomeCycle Outcome = iota
	// OutcomePath: an Eulerian path between the two odd vertices was found.
	OutcomePath
	// OutcomeTooManyOdd: more than two vertices have odd degree.
	OutcomeTooManyOdd
	// OutcomeZeroDegree: the graph has no edges.
	OutcomeZeroDegree
	// OutcomeDisconnected: the edges span more than one component.
	OutcomeDisconnected
)

// String returns a short name for o.
func (o Outcome) String() string {
	switch o {
	case OutcomeCycle:
		return "cycle"
	case OutcomePath:
		return "path"
	case OutcomeTooManyOdd:
		return "too-many-odd"
	case OutcomeZeroDegree:
		return "zero-degree"
	case OutcomeDisconnected:
		return "disconnected"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Solution is the formatted answer for one graph.
type Solution struct {
	// Outcome is the verdict.
	Outcome Outcome

	// Vertices is the cycle (closed) or path (open) for OutcomeCycle and
	// OutcomePath, nil otherwise.
	Vertices []int

	// Classification is the parity class the decision was based on.
	Classification Classification

	// Components is the number of edge-bearing components of the input.
	Components int

	// SubCircuits and Merges repeat the engine counters.
	SubCircuits int
	Merges      int
}

// Exists reports whether an Eulerian cycle or path was found.
func (s Solution) Exists() bool {
	return s.Outcome == OutcomeCycle || s.Outcome == OutcomePath
}

// Closed reports whether Vertices is a closed walk.
func (s Solution) Closed() bool {
	return s.Outcome == OutcomeCycle
}

// Solve classifies g, runs the engine when a walk is possible and formats the
// result. The graph is consumed; pass a Clone to keep the input.
// Errors: ErrGraphNil, plus any engine error (which indicates misuse, not a
// graph without a walk).
func Solve(g *multigraph.Graph, opts ...Option) (Solution, error) {
	c, err := Classify(g)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{Classification: c}
	switch c.(type) {
	case MoreThanTwoOdd:
		sol.Outcome = OutcomeTooManyOdd
		return sol, nil
	case AllZeroDegree:
		sol.Outcome = OutcomeZeroDegree
		return sol, nil
	}

	// Counted before the engine consumes edges and adds the synthetic vertex.
	sol.Components = g.Components()

	res, err := FindCircuit(g, c, opts...)
	if err != nil {
		return Solution{}, fmt.Errorf("Solve: %w", err)
	}
	sol.SubCircuits, sol.Merges = res.SubCircuits, res.Merges

	if !res.Exists {
		sol.Outcome = OutcomeDisconnected
		return sol, nil
	}

	if res.Synthetic < 0 {
		sol.Outcome = OutcomeCycle
		sol.Vertices = CycleVertices(res.Cycle)

		return sol, nil
	}

	vertices, err := PathVertices(res.Cycle, res.Synthetic)
	if err != nil {
		return Solution{}, fmt.Errorf("Solve: %w", err)
	}
	sol.Outcome = OutcomePath
	sol.Vertices = vertices

	return sol, nil
}
