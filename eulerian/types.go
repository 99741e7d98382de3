// Package eulerian defines the classification sum type, engine options and
// result types shared by the classifier, engine and formatter.
package eulerian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eulerpath/walk"
)

var (
	// ErrGraphNil is returned when a nil *multigraph.Graph is passed in.
	ErrGraphNil = errors.New("eulerian: graph is nil")

	// ErrNoCandidate is returned by FindCircuit for classifications that
	// rule out any Eulerian walk.
	ErrNoCandidate = errors.New("eulerian: graph admits no eulerian walk")

	// ErrStaleClassification indicates the classification was not computed
	// for the graph it is used with.
	ErrStaleClassification = errors.New("eulerian: classification does not match graph")

	// ErrSyntheticNotFound indicates PathVertices could not locate the
	// synthetic vertex in the closed walk.
	ErrSyntheticNotFound = errors.New("eulerian: synthetic vertex not in walk")

	// ErrInvalidWalk is returned by Verify for a sequence that is not an
	// Eulerian walk of the given edges.
	ErrInvalidWalk = errors.New("eulerian: invalid walk")
)

// Kind tags the variant of a Classification.
type Kind int

const (
	// KindNoOdd: every vertex has even degree.
	KindNoOdd Kind = iota
	// KindTwoOdd: exactly two vertices have odd degree.
	KindTwoOdd
	// KindMoreThanTwoOdd: at least three vertices have odd degree.
	KindMoreThanTwoOdd
	// KindAllZeroDegree: the graph has no edges.
	KindAllZeroDegree
)

// String returns the kebab-case name of k.
func (k Kind) String() string {
	switch k {
	case KindNoOdd:
		return "no-odd"
	case KindTwoOdd:
		return "two-odd"
	case KindMoreThanTwoOdd:
		return "more-than-two-odd"
	case KindAllZeroDegree:
		return "all-zero-degree"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Classification is the degree-parity summary of a graph. It is one of
// NoOdd, TwoOdd, MoreThanTwoOdd or AllZeroDegree; each variant carries only
// the fields meaningful for it. Values are comparable with ==.
type Classification interface {
	fmt.Stringer
	Kind() Kind
	sealed()
}

// NoOdd classifies a graph with edges whose vertices all have even degree.
type NoOdd struct {
	// MaxDegreeVertex is the lowest-index vertex of maximum degree.
	MaxDegreeVertex int
}

// TwoOdd classifies a graph with exactly two odd-degree vertices.
type TwoOdd struct {
	// MaxDegreeVertex is the lowest-index vertex of maximum degree.
	MaxDegreeVertex int
	// Endpoints are the two odd-degree vertices in index order.
	Endpoints [2]int
}

// MoreThanTwoOdd classifies a graph with three or more odd-degree vertices.
type MoreThanTwoOdd struct{}

// AllZeroDegree classifies a graph without any edge.
type AllZeroDegree struct{}

func (NoOdd) Kind() Kind          { return KindNoOdd }
func (TwoOdd) Kind() Kind         { return KindTwoOdd }
func (MoreThanTwoOdd) Kind() Kind { return KindMoreThanTwoOdd }
func (AllZeroDegree) Kind() Kind  { return KindAllZeroDegree }

func (NoOdd) sealed()          {}
func (TwoOdd) sealed()         {}
func (MoreThanTwoOdd) sealed() {}
func (AllZeroDegree) sealed()  {}

func (c NoOdd) String() string {
	return fmt.Sprintf("%s (max-degree vertex %d)", KindNoOdd, c.MaxDegreeVertex)
}

func (c TwoOdd) String() string {
	return fmt.Sprintf("%s (endpoints %d,%d; max-degree vertex %d)",
		KindTwoOdd, c.Endpoints[0], c.Endpoints[1], c.MaxDegreeVertex)
}

func (MoreThanTwoOdd) String() string { return KindMoreThanTwoOdd.String() }
func (AllZeroDegree) String() string  { return KindAllZeroDegree.String() }

// Option configures FindCircuit and Solve.
type Option func(*Options)

// Options holds engine knobs and hooks.
type Options struct {
	// DeferStart makes sub-circuit extraction postpone edges that lead back
	// to the sub-circuit's start while other edges remain. Default true.
	DeferStart bool

	// OnSubCircuit, if non-nil, is called after each sub-circuit extraction
	// with its start vertex and element count.
	OnSubCircuit func(start, length int)

	// OnMerge, if non-nil, is called after each splice with the vertex at
	// which the sub-circuit was merged.
	OnMerge func(vertex int)
}

// DefaultOptions returns Options with start deferral enabled and no hooks.
func DefaultOptions() Options {
	return Options{DeferStart: true}
}

// WithDeferStart toggles the start-deferral heuristic.
func WithDeferStart(enabled bool) Option {
	return func(o *Options) {
		o.DeferStart = enabled
	}
}

// WithOnSubCircuit installs fn as the sub-circuit hook.
func WithOnSubCircuit(fn func(start, length int)) Option {
	return func(o *Options) {
		o.OnSubCircuit = fn
	}
}

// WithOnMerge installs fn as the merge hook.
func WithOnMerge(fn func(vertex int)) Option {
	return func(o *Options) {
		o.OnMerge = fn
	}
}

// Result is the outcome of FindCircuit.
type Result struct {
	// Exists reports whether every edge was consumed by a single closed walk.
	Exists bool

	// Cycle is the closed walk when Exists is true, nil otherwise.
	Cycle *walk.Path

	// Synthetic is the index of the vertex added by ReduceToCycle, or -1.
	Synthetic int

	// SubCircuits counts extracted sub-circuits, including the seed.
	SubCircuits int

	// Merges counts splices into the main walk.
	Merges int
}
