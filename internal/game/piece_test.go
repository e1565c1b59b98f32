package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed sequence of draws, wrapping around.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
}

func TestCatalogShapesAreValid(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 18)
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			p := NewPiece("x", k)
			require.NotNil(t, p)
			assert.Greater(t, p.Size(), 0)
			for _, row := range p.Shape() {
				assert.Len(t, row, p.Cols())
			}
			assert.NotZero(t, k.Color())
		})
	}
}

func TestNewPieceUnknownKind(t *testing.T) {
	assert.Nil(t, NewPiece("x", ShapeKind(99)))
	assert.Nil(t, NewPiece("x", ShapeCustom))
}

func TestPieceShapeIsACopy(t *testing.T) {
	p := NewPiece("sq", ShapeSquare2)
	shape := p.Shape()
	shape[0][0] = Empty

	assert.True(t, p.Occupied(0, 0))
	assert.Equal(t, Filled, shapeCatalog[ShapeSquare2][0][0], "catalog must stay untouched")
}

func TestPieceFromShape(t *testing.T) {
	_, err := PieceFromShape("a", nil)
	assert.ErrorIs(t, err, ErrEmptyShape)

	_, err = PieceFromShape("a", Shape{{}})
	assert.ErrorIs(t, err, ErrEmptyShape)

	_, err = PieceFromShape("a", Shape{{0, 0}, {0, 0}})
	assert.ErrorIs(t, err, ErrEmptyShape)

	_, err = PieceFromShape("a", Shape{{1, 1}, {1}})
	assert.ErrorIs(t, err, ErrRaggedShape)

	src := Shape{{1, 0}, {1, 1}}
	p, err := PieceFromShape("a", src)
	require.NoError(t, err)
	src[0][0] = Empty
	assert.True(t, p.Occupied(0, 0), "piece must not alias its input")
	assert.Equal(t, ShapeCustom, p.Kind)
	assert.Equal(t, []Position{{0, 0}, {1, 0}, {1, 1}}, p.Cells())
	assert.Equal(t, 3, p.Size())
}

func TestOccupiedOutOfRange(t *testing.T) {
	p := NewPiece("bar", ShapeBar2H)
	assert.False(t, p.Occupied(-1, 0))
	assert.False(t, p.Occupied(0, 2))
	assert.False(t, p.Occupied(1, 0))
}

func TestGeneratorSetSizeAndMembership(t *testing.T) {
	gen := NewPieceGeneratorFrom(&seqSource{vals: []int{0, 17, 5, 5}}, counterIDs())

	set := gen.NextSet(4)
	require.Len(t, set, 4)
	assert.Equal(t, ShapeSquare2, set[0].Kind)
	assert.Equal(t, ShapeHookJ, set[1].Kind)
	assert.Equal(t, ShapeBar2V, set[2].Kind)
	// duplicates within a set are allowed
	assert.Equal(t, ShapeBar2V, set[3].Kind)

	ids := map[string]bool{}
	for _, p := range set {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
	}
	assert.Equal(t, "p1", set[0].ID)
	assert.Equal(t, "p4", set[3].ID)
}

func TestGeneratorDefaultSetSize(t *testing.T) {
	gen := NewPieceGenerator(1)
	assert.Len(t, gen.NextSet(0), DefaultSetSize)
	assert.Len(t, gen.NextSet(-2), DefaultSetSize)
}

func TestGeneratorSeeded(t *testing.T) {
	a := NewPieceGenerator(42)
	b := NewPieceGenerator(42)
	for i := 0; i < 50; i++ {
		pa, pb := a.Next(), b.Next()
		assert.Equal(t, pa.Kind, pb.Kind)
		assert.NotEqual(t, pa.ID, pb.ID)
	}
}

func TestGeneratorCoversCatalog(t *testing.T) {
	gen := NewPieceGenerator(7)
	seen := map[ShapeKind]bool{}
	for i := 0; i < 2000; i++ {
		p := gen.Next()
		_, ok := shapeCatalog[p.Kind]
		require.True(t, ok, "kind %v not in catalog", p.Kind)
		seen[p.Kind] = true
	}
	assert.Len(t, seen, len(Kinds()))
}
