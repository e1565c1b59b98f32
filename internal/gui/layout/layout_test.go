package layout

import (
	"image"
	"testing"

	"github.com/hersh/go1010/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestSizeFitsBoardAndTray(t *testing.T) {
	g := New(game.DefaultRules())
	w, h := g.Size()

	assert.Equal(t, 10*CellSize+2*Padding, w)
	assert.Equal(t, HeaderHeight+10*CellSize+Padding+SlotSize+Padding+FooterHeight, h)

	wide := Geometry{Rows: 3, Cols: 3, SetSize: 9}
	w, _ = wide.Size()
	assert.Equal(t, 9*SlotSize+2*Padding, w, "a wide tray sets the width")
}

func TestCellAt(t *testing.T) {
	g := New(game.DefaultRules())
	o := g.BoardOrigin()

	tests := []struct {
		name string
		x, y int
		want game.Position
		ok   bool
	}{
		{"top-left pixel", o.X, o.Y, game.Position{}, true},
		{"inside a cell", o.X + 2*CellSize + 5, o.Y + 3*CellSize + 31, game.Position{Row: 3, Col: 2}, true},
		{"last cell", o.X + 10*CellSize - 1, o.Y + 10*CellSize - 1, game.Position{Row: 9, Col: 9}, true},
		{"left of board", o.X - 1, o.Y, game.Position{}, false},
		{"below board", o.X, o.Y + 10*CellSize, game.Position{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.CellAt(tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellRectRoundTrip(t *testing.T) {
	g := New(game.DefaultRules())
	pos := game.Position{Row: 4, Col: 7}
	r := g.CellRect(pos)

	got, ok := g.CellAt(r.Min.X, r.Min.Y)
	assert.True(t, ok)
	assert.Equal(t, pos, got)
	assert.Equal(t, image.Pt(CellSize, CellSize), r.Size())
}

func TestSlotAt(t *testing.T) {
	g := New(game.DefaultRules())

	for i := 0; i < 3; i++ {
		c := g.SlotRect(i).Min.Add(image.Pt(SlotSize/2, SlotSize/2))
		got, ok := g.SlotAt(c.X, c.Y)
		assert.True(t, ok)
		assert.Equal(t, i, got)
	}

	o := g.BoardOrigin()
	_, ok := g.SlotAt(o.X, o.Y)
	assert.False(t, ok, "the board is not a slot")
}

func TestPieceOriginCentresShape(t *testing.T) {
	g := New(game.DefaultRules())
	p := game.NewPiece("p", game.ShapeBar4H)
	r := g.SlotRect(1)

	o := g.PieceOrigin(1, p)
	assert.Equal(t, r.Min.X+(SlotSize-4*TrayCellSize)/2, o.X)
	assert.Equal(t, r.Min.Y+(SlotSize-TrayCellSize)/2, o.Y)
}
