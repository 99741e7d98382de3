package eulerian

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/eulerpath/walk"
)

// CycleVertices returns the vertices of a closed walk in traversal order.
// The first and last entries are the same vertex.
func CycleVertices(cycle *walk.Path) []int {
	if cycle == nil {
		return nil
	}

	return cycle.Vertices()
}

// PathVertices converts the closed walk of a reduced graph into the Eulerian
// path of the input graph. It drops the closing duplicate element, finds
// the synthetic vertex, and emits every vertex after it, wrapping from the
// tail to the head, until the synthetic element comes round again. The
// synthetic vertex never appears in the output and the endpoints are the two
// former odd vertices.
//
// PathVertices consumes the closing element of cycle.
// Errors: walk.ErrNilPath, ErrSyntheticNotFound.
// Complexity: O(len(cycle)).
func PathVertices(cycle *walk.Path, synthetic int) ([]int, error) {
	if cycle == nil {
		return nil, walk.ErrNilPath
	}
	if cycle.Len() < 2 {
		return nil, fmt.Errorf("PathVertices: walk of %d elements: %w", cycle.Len(), ErrSyntheticNotFound)
	}

	// 1) The closing element duplicates the seed in the head element.
	if _, err := cycle.Remove(cycle.Back()); err != nil {
		return nil, fmt.Errorf("PathVertices: %w", err)
	}

	// 2) The synthetic vertex has degree 2, so it occurs exactly once now.
	anchor := cycle.Find(nil, synthetic)
	if anchor == nil {
		return nil, fmt.Errorf("PathVertices: vertex %d: %w", synthetic, ErrSyntheticNotFound)
	}

	// 3) Rotate: start right after the anchor and wrap at the tail.
	out := make([]int, 0, cycle.Len()-1)
	for el := wrapNext(cycle, anchor); el != anchor; el = wrapNext(cycle, el) {
		out = append(out, el.Vertex)
	}

	return out, nil
}

// wrapNext returns the element after el, continuing at the head past the tail.
func wrapNext(p *walk.Path, el *walk.Element) *walk.Element {
	if next := el.Next(); next != nil {
		return next
	}

	return p.Front()
}

// Format joins vertices with single spaces.
func Format(vertices []int) string {
	return Join(vertices, " ")
}

// Join joins vertices with sep.
func Join(vertices []int, sep string) string {
	var sb strings.Builder
	for i, v := range vertices {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
