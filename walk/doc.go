// Package walk implements the vertex sequence produced by Hierholzer's
// algorithm: a doubly linked list of elements, each naming one vertex.
//
// Besides the usual append/insert/remove operations, a Path supports an
// ownership-transferring Splice: one element of the receiver is replaced in
// place by every element of another path, in order, and the donor path is
// left empty. Elements are never copied during a splice, so a running scan
// can continue from the first spliced element without losing its position.
//
// Every Element remembers the Path that owns it; operations given an element
// of a different path return ErrForeignElement instead of corrupting either
// list. Paths are not safe for concurrent use.
package walk
