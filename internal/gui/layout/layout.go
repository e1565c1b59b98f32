// Package layout holds the pixel geometry of the windowed frontend: where
// the board, the tray slots and the status lines sit, and which of them a
// pointer position falls on.
package layout

import (
	"image"

	"github.com/hersh/go1010/internal/game"
)

const (
	CellSize     = 32
	TrayCellSize = 14
	Padding      = 16
	HeaderHeight = 56
	FooterHeight = 24

	// A slot fits the largest catalog shape (4 cells) plus a margin.
	SlotSize = 5*TrayCellSize + 2*8
)

type Geometry struct {
	Rows    int
	Cols    int
	SetSize int
}

func New(r game.Rules) Geometry {
	return Geometry{Rows: r.Rows, Cols: r.Cols, SetSize: r.SetSize}
}

func (g Geometry) boardWidth() int  { return g.Cols * CellSize }
func (g Geometry) boardHeight() int { return g.Rows * CellSize }
func (g Geometry) trayWidth() int   { return g.SetSize * SlotSize }

// Size is the window size in pixels.
func (g Geometry) Size() (int, int) {
	w := max(g.boardWidth(), g.trayWidth(), 280) + 2*Padding
	h := g.TrayTop() + SlotSize + Padding + FooterHeight
	return w, h
}

// BoardOrigin is the top-left pixel of the board, centred horizontally.
func (g Geometry) BoardOrigin() image.Point {
	w, _ := g.Size()
	return image.Pt((w-g.boardWidth())/2, HeaderHeight)
}

func (g Geometry) TrayTop() int {
	return HeaderHeight + g.boardHeight() + Padding
}

func (g Geometry) CellRect(pos game.Position) image.Rectangle {
	o := g.BoardOrigin()
	tl := image.Pt(o.X+pos.Col*CellSize, o.Y+pos.Row*CellSize)
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(CellSize, CellSize))}
}

// CellAt maps a pixel to the board cell under it.
func (g Geometry) CellAt(x, y int) (game.Position, bool) {
	o := g.BoardOrigin()
	if x < o.X || y < o.Y {
		return game.Position{}, false
	}
	pos := game.Position{Row: (y - o.Y) / CellSize, Col: (x - o.X) / CellSize}
	if pos.Row >= g.Rows || pos.Col >= g.Cols {
		return game.Position{}, false
	}
	return pos, true
}

func (g Geometry) SlotRect(i int) image.Rectangle {
	w, _ := g.Size()
	left := (w - g.trayWidth()) / 2
	tl := image.Pt(left+i*SlotSize, g.TrayTop())
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(SlotSize, SlotSize))}
}

// SlotAt maps a pixel to the tray slot under it.
func (g Geometry) SlotAt(x, y int) (int, bool) {
	p := image.Pt(x, y)
	for i := 0; i < g.SetSize; i++ {
		if p.In(g.SlotRect(i)) {
			return i, true
		}
	}
	return 0, false
}

// PieceOrigin centres a piece's shape inside slot i.
func (g Geometry) PieceOrigin(i int, p *game.Piece) image.Point {
	r := g.SlotRect(i)
	return image.Pt(
		r.Min.X+(SlotSize-p.Cols()*TrayCellSize)/2,
		r.Min.Y+(SlotSize-p.Rows()*TrayCellSize)/2,
	)
}
