package walk

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNilPath is returned when a nil *Path is passed where one is required.
	ErrNilPath = errors.New("walk: nil path")

	// ErrForeignElement is returned when an element does not belong to the receiver.
	ErrForeignElement = errors.New("walk: element belongs to another path")

	// ErrSelfSplice is returned when a path is spliced into itself.
	ErrSelfSplice = errors.New("walk: cannot splice a path into itself")
)

// Element is one vertex occurrence in a Path.
type Element struct {
	// Vertex is the graph vertex index this element visits.
	Vertex int

	prev, next *Element
	owner      *Path
}

// Next returns the following element or nil at the tail.
func (e *Element) Next() *Element { return e.next }

// Prev returns the preceding element or nil at the head.
func (e *Element) Prev() *Element { return e.prev }

// Path is an ordered sequence of vertex elements (a walk).
// The zero value is an empty path ready to use.
type Path struct {
	head, tail *Element
	size       int
}

// New returns a path visiting vertices in order.
func New(vertices ...int) *Path {
	p := &Path{}
	for _, v := range vertices {
		p.Append(v)
	}

	return p
}

// Len returns the number of elements.
func (p *Path) Len() int { return p.size }

// Front returns the first element or nil.
func (p *Path) Front() *Element { return p.head }

// Back returns the last element or nil.
func (p *Path) Back() *Element { return p.tail }

// Append adds vertex v at the tail and returns its element.
// Complexity: O(1).
func (p *Path) Append(v int) *Element {
	e := &Element{Vertex: v, prev: p.tail, owner: p}
	if p.tail != nil {
		p.tail.next = e
	} else {
		p.head = e
	}
	p.tail = e
	p.size++

	return e
}

// InsertAfter inserts vertex v right after at and returns the new element.
// Complexity: O(1).
func (p *Path) InsertAfter(at *Element, v int) (*Element, error) {
	if at == nil || at.owner != p {
		return nil, ErrForeignElement
	}

	e := &Element{Vertex: v, prev: at, next: at.next, owner: p}
	if at.next != nil {
		at.next.prev = e
	} else {
		p.tail = e
	}
	at.next = e
	p.size++

	return e, nil
}

// Remove unlinks e and returns its successor (nil at the tail), so that a
// loop can delete while iterating.
// Complexity: O(1).
func (p *Path) Remove(e *Element) (*Element, error) {
	if e == nil || e.owner != p {
		return nil, ErrForeignElement
	}

	next := e.next
	p.unlink(e)
	e.prev, e.next, e.owner = nil, nil, nil

	return next, nil
}

// Splice replaces at with the whole sequence of sub, preserving order.
// Ownership of sub's elements moves to p and sub is left empty. The
// returned element is sub's former first element, i.e. the element that
// now stands where at stood. An empty sub leaves p unchanged and returns at.
//
// Complexity: O(len(sub)) for the ownership hand-over, O(1) relinking.
func (p *Path) Splice(at *Element, sub *Path) (*Element, error) {
	if sub == nil {
		return nil, ErrNilPath
	}
	if sub == p {
		return nil, ErrSelfSplice
	}
	if at == nil || at.owner != p {
		return nil, ErrForeignElement
	}
	if sub.size == 0 {
		return at, nil
	}

	first, last := sub.head, sub.tail
	for e := first; e != nil; e = e.next {
		e.owner = p
	}

	// Reconnect the predecessor side (or move the head).
	first.prev = at.prev
	if at.prev != nil {
		at.prev.next = first
	} else {
		p.head = first
	}

	// Reconnect the successor side (or move the tail).
	last.next = at.next
	if at.next != nil {
		at.next.prev = last
	} else {
		p.tail = last
	}

	p.size += sub.size - 1
	at.prev, at.next, at.owner = nil, nil, nil
	sub.head, sub.tail, sub.size = nil, nil, 0

	return first, nil
}

// Find returns the first element at or after from whose vertex equals v.
// A nil from starts at the head. Returns nil if none is found.
// Complexity: O(n).
func (p *Path) Find(from *Element, v int) *Element {
	if from == nil {
		from = p.head
	} else if from.owner != p {
		return nil
	}

	for e := from; e != nil; e = e.next {
		if e.Vertex == v {
			return e
		}
	}

	return nil
}

// Vertices returns the vertex sequence as a slice.
func (p *Path) Vertices() []int {
	out := make([]int, 0, p.size)
	for e := p.head; e != nil; e = e.next {
		out = append(out, e.Vertex)
	}

	return out
}

// String renders the path as space-separated vertex indices.
func (p *Path) String() string {
	var sb strings.Builder
	for e := p.head; e != nil; e = e.next {
		if e != p.head {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(e.Vertex))
	}

	return sb.String()
}

func (p *Path) unlink(e *Element) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		p.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		p.tail = e.prev
	}
	p.size--
}
