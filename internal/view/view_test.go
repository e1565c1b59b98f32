package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hersh/go1010/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestProjectWithoutPiece(t *testing.T) {
	b := game.BoardFromRows(
		"#..",
		"...",
	)
	got := Project(b, nil, game.Position{})
	assert.Equal(t, "#..\n...", got.String())
}

func TestProjectPreview(t *testing.T) {
	b := game.BoardFromRows(
		"#...",
		"....",
		"....",
	)
	got := Project(b, game.NewPiece("l", game.ShapeCornerL), game.Position{Row: 1, Col: 1})
	want := "#...\n.o..\n.oo."
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, got.Count(MarkPreview))
}

func TestProjectConflict(t *testing.T) {
	b := game.BoardFromRows(
		"....",
		".#..",
		"....",
	)
	before := b.Clone()
	got := Project(b, game.NewPiece("sq", game.ShapeSquare2), game.Position{Row: 0, Col: 0})
	assert.Equal(t, "xx..\nxx..\n....", got.String())

	// hanging off the right edge marks only the in-bounds part
	got = Project(b, game.NewPiece("bar", game.ShapeBar3H), game.Position{Row: 2, Col: 2})
	assert.Equal(t, "....\n.#..\n..xx", got.String())

	assert.Equal(t, before, b, "projection must not touch the board")
}

func TestProjectHighlightsClearingLines(t *testing.T) {
	b := game.BoardFromRows(
		"##..",
		"#...",
		"#...",
		"....",
	)
	// bar-2h at (0,2) completes row 0
	got := Project(b, game.NewPiece("bar", game.ShapeBar2H), game.Position{Row: 0, Col: 2})
	assert.Equal(t, "****\n#...\n#...\n....", got.String())

	// a single cell at (3,0) completes column 0
	dot, err := game.PieceFromShape("dot", game.Shape{{1}})
	assert.NoError(t, err)
	got = Project(b, dot, game.Position{Row: 3, Col: 0})
	assert.Equal(t, "*#..\n*...\n*...\n*...", got.String())
}
