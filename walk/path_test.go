package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulerpath/walk"
)

// backwards collects vertices from tail to head, to check prev links.
func backwards(p *walk.Path) []int {
	var out []int
	for e := p.Back(); e != nil; e = e.Prev() {
		out = append(out, e.Vertex)
	}

	return out
}

func TestAppendAndTraverse(t *testing.T) {
	p := walk.New(3, 1, 4)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []int{3, 1, 4}, p.Vertices())
	assert.Equal(t, []int{4, 1, 3}, backwards(p))
	assert.Equal(t, "3 1 4", p.String())
}

func TestZeroValuePath(t *testing.T) {
	var p walk.Path
	assert.Nil(t, p.Front())
	assert.Nil(t, p.Back())
	assert.Equal(t, "", p.String())
	p.Append(7)
	assert.Equal(t, []int{7}, p.Vertices())
}

func TestInsertAfter(t *testing.T) {
	p := walk.New(0, 2)
	e, err := p.InsertAfter(p.Front(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Vertex)

	_, err = p.InsertAfter(p.Back(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, p.Vertices())
	assert.Equal(t, []int{3, 2, 1, 0}, backwards(p))

	other := walk.New(9)
	_, err = p.InsertAfter(other.Front(), 5)
	assert.ErrorIs(t, err, walk.ErrForeignElement)
}

func TestRemove_WhileIterating(t *testing.T) {
	p := walk.New(1, 2, 3, 4, 5)
	for e := p.Front(); e != nil; {
		if e.Vertex%2 == 0 {
			next, err := p.Remove(e)
			require.NoError(t, err)
			e = next
			continue
		}
		e = e.Next()
	}
	assert.Equal(t, []int{1, 3, 5}, p.Vertices())
	assert.Equal(t, []int{5, 3, 1}, backwards(p))

	last := p.Back()
	next, err := p.Remove(last)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, []int{1, 3}, p.Vertices())

	_, err = p.Remove(last)
	assert.ErrorIs(t, err, walk.ErrForeignElement)
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name  string
		main  []int
		at    int // index of the element replaced
		sub   []int
		want  []int
		first int
	}{
		{"middle", []int{0, 1, 2, 0}, 1, []int{1, 3, 4, 1}, []int{0, 1, 3, 4, 1, 2, 0}, 1},
		{"head", []int{0, 1, 2, 0}, 0, []int{0, 5, 0}, []int{0, 5, 0, 1, 2, 0}, 0},
		{"tail", []int{0, 1, 2, 0}, 3, []int{0, 6, 0}, []int{0, 1, 2, 0, 6, 0}, 0},
		{"only element", []int{2}, 0, []int{2, 3, 2}, []int{2, 3, 2}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := walk.New(tc.main...)
			at := p.Front()
			for i := 0; i < tc.at; i++ {
				at = at.Next()
			}
			sub := walk.New(tc.sub...)
			subFirst := sub.Front()

			got, err := p.Splice(at, sub)
			require.NoError(t, err)
			assert.Same(t, subFirst, got)
			assert.Equal(t, tc.first, got.Vertex)
			assert.Equal(t, tc.want, p.Vertices())
			assert.Equal(t, len(tc.want), p.Len())

			rev := make([]int, len(tc.want))
			for i, v := range tc.want {
				rev[len(tc.want)-1-i] = v
			}
			assert.Equal(t, rev, backwards(p))

			// The donor is emptied and the replaced element is detached.
			assert.Equal(t, 0, sub.Len())
			assert.Nil(t, sub.Front())
			_, err = p.Remove(at)
			assert.ErrorIs(t, err, walk.ErrForeignElement)

			// Spliced elements now belong to p.
			_, err = p.Remove(got)
			assert.NoError(t, err)
		})
	}
}

func TestSplice_EmptyDonor(t *testing.T) {
	p := walk.New(0, 1)
	got, err := p.Splice(p.Back(), walk.New())
	require.NoError(t, err)
	assert.Same(t, p.Back(), got)
	assert.Equal(t, []int{0, 1}, p.Vertices())
}

func TestSplice_Errors(t *testing.T) {
	p := walk.New(0, 1)
	other := walk.New(5, 6)

	_, err := p.Splice(p.Front(), nil)
	assert.ErrorIs(t, err, walk.ErrNilPath)

	_, err = p.Splice(p.Front(), p)
	assert.ErrorIs(t, err, walk.ErrSelfSplice)

	_, err = p.Splice(other.Front(), walk.New(1))
	assert.ErrorIs(t, err, walk.ErrForeignElement)

	_, err = p.Splice(nil, walk.New(1))
	assert.ErrorIs(t, err, walk.ErrForeignElement)

	assert.Equal(t, []int{0, 1}, p.Vertices())
	assert.Equal(t, []int{5, 6}, other.Vertices())
}

func TestFind(t *testing.T) {
	p := walk.New(4, 7, 4, 9)
	first := p.Find(nil, 4)
	require.NotNil(t, first)
	assert.Same(t, p.Front(), first)

	second := p.Find(first.Next(), 4)
	require.NotNil(t, second)
	assert.Equal(t, 9, second.Next().Vertex)

	assert.Nil(t, p.Find(nil, 8))
	assert.Nil(t, p.Find(walk.New(4).Front(), 4))
}
