package game

import (
	"math/rand"

	"github.com/google/uuid"
)

const DefaultSetSize = 3

// RandSource is the slice of *rand.Rand the generator needs.
type RandSource interface {
	Intn(n int) int
}

// PieceGenerator draws pieces uniformly from the shape catalog.
// When created with the same seed, two generators produce the same kinds
// in the same order.
type PieceGenerator struct {
	rng   RandSource
	newID func() string
	kinds []ShapeKind
}

// NewPieceGenerator creates a seeded generator that tags pieces with
// random UUIDs.
func NewPieceGenerator(seed int64) *PieceGenerator {
	return NewPieceGeneratorFrom(rand.New(rand.NewSource(seed)), uuid.NewString)
}

// NewPieceGeneratorFrom creates a generator over an explicit random
// source and id function. A nil newID falls back to UUIDs.
func NewPieceGeneratorFrom(rng RandSource, newID func() string) *PieceGenerator {
	if newID == nil {
		newID = uuid.NewString
	}
	return &PieceGenerator{
		rng:   rng,
		newID: newID,
		kinds: Kinds(),
	}
}

// Next returns one freshly identified piece.
func (pg *PieceGenerator) Next() *Piece {
	kind := pg.kinds[pg.rng.Intn(len(pg.kinds))]
	return NewPiece(pg.newID(), kind)
}

// NextSet returns n independent pieces; duplicates are allowed. n <= 0
// yields DefaultSetSize pieces.
func (pg *PieceGenerator) NextSet(n int) []*Piece {
	if n <= 0 {
		n = DefaultSetSize
	}
	set := make([]*Piece, n)
	for i := range set {
		set[i] = pg.Next()
	}
	return set
}
