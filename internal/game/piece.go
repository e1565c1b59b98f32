package game

import "errors"

var (
	ErrEmptyShape  = errors.New("shape has no occupied cell")
	ErrRaggedShape = errors.New("shape rows differ in length")
)

// Shape is a rectangular occupancy matrix, indexed [row][col].
type Shape [][]Cell

type ShapeKind int

const (
	ShapeSquare2 ShapeKind = iota
	ShapeSquare3
	ShapeBar2H
	ShapeBar3H
	ShapeBar4H
	ShapeBar2V
	ShapeBar3V
	ShapeBar4V
	ShapeTDown
	ShapeTUp
	ShapeTLeft
	ShapeTRight
	ShapeZ
	ShapeS
	ShapeCornerL
	ShapeCornerJ
	ShapeHookL
	ShapeHookJ

	// ShapeCustom marks pieces built with PieceFromShape.
	ShapeCustom ShapeKind = -1
)

var shapeCatalog = map[ShapeKind]Shape{
	ShapeSquare2: {
		{1, 1},
		{1, 1},
	},
	ShapeSquare3: {
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	},
	ShapeBar2H: {{1, 1}},
	ShapeBar3H: {{1, 1, 1}},
	ShapeBar4H: {{1, 1, 1, 1}},
	ShapeBar2V: {{1}, {1}},
	ShapeBar3V: {{1}, {1}, {1}},
	ShapeBar4V: {{1}, {1}, {1}, {1}},
	ShapeTDown: {
		{1, 1, 1},
		{0, 1, 0},
	},
	ShapeTUp: {
		{0, 1, 0},
		{1, 1, 1},
	},
	ShapeTLeft: {
		{0, 1},
		{1, 1},
		{0, 1},
	},
	ShapeTRight: {
		{1, 0},
		{1, 1},
		{1, 0},
	},
	ShapeZ: {
		{1, 1, 0},
		{0, 1, 1},
	},
	ShapeS: {
		{0, 1, 1},
		{1, 1, 0},
	},
	ShapeCornerL: {
		{1, 0},
		{1, 1},
	},
	ShapeCornerJ: {
		{0, 1},
		{1, 1},
	},
	ShapeHookL: {
		{1, 1, 1},
		{1, 0, 0},
	},
	ShapeHookJ: {
		{1, 1, 1},
		{0, 0, 1},
	},
}

var shapeNames = map[ShapeKind]string{
	ShapeSquare2: "square-2",
	ShapeSquare3: "square-3",
	ShapeBar2H:   "bar-2h",
	ShapeBar3H:   "bar-3h",
	ShapeBar4H:   "bar-4h",
	ShapeBar2V:   "bar-2v",
	ShapeBar3V:   "bar-3v",
	ShapeBar4V:   "bar-4v",
	ShapeTDown:   "t-down",
	ShapeTUp:     "t-up",
	ShapeTLeft:   "t-left",
	ShapeTRight:  "t-right",
	ShapeZ:       "z",
	ShapeS:       "s",
	ShapeCornerL: "corner-l",
	ShapeCornerJ: "corner-j",
	ShapeHookL:   "hook-l",
	ShapeHookJ:   "hook-j",
	ShapeCustom:  "custom",
}

// Palette indexes shared by the frontends.
var shapeColors = map[ShapeKind]int{
	ShapeSquare2: 3,
	ShapeSquare3: 2,
	ShapeBar2H:   6,
	ShapeBar3H:   6,
	ShapeBar4H:   6,
	ShapeBar2V:   4,
	ShapeBar3V:   4,
	ShapeBar4V:   4,
	ShapeTDown:   5,
	ShapeTUp:     5,
	ShapeTLeft:   5,
	ShapeTRight:  5,
	ShapeZ:       1,
	ShapeS:       1,
	ShapeCornerL: 7,
	ShapeCornerJ: 7,
	ShapeHookL:   3,
	ShapeHookJ:   3,
	ShapeCustom:  7,
}

// Kinds lists the catalog in a stable order.
func Kinds() []ShapeKind {
	kinds := make([]ShapeKind, 0, len(shapeCatalog))
	for k := ShapeSquare2; k <= ShapeHookJ; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k ShapeKind) String() string {
	if name, ok := shapeNames[k]; ok {
		return name
	}
	return "unknown"
}

// Color returns the palette index used to draw pieces of this kind.
func (k ShapeKind) Color() int {
	return shapeColors[k]
}

// Piece is one selectable block. Its shape is fixed at construction.
type Piece struct {
	ID    string
	Kind  ShapeKind
	shape Shape
}

// NewPiece builds a catalog piece. Unknown kinds yield nil.
func NewPiece(id string, kind ShapeKind) *Piece {
	src, ok := shapeCatalog[kind]
	if !ok {
		return nil
	}
	return &Piece{
		ID:    id,
		Kind:  kind,
		shape: copyShape(src),
	}
}

// PieceFromShape builds a piece with an arbitrary rectangular shape.
func PieceFromShape(id string, shape Shape) (*Piece, error) {
	if len(shape) == 0 || len(shape[0]) == 0 {
		return nil, ErrEmptyShape
	}
	width := len(shape[0])
	occupied := false
	for _, row := range shape {
		if len(row) != width {
			return nil, ErrRaggedShape
		}
		for _, c := range row {
			if c == Filled {
				occupied = true
			}
		}
	}
	if !occupied {
		return nil, ErrEmptyShape
	}
	return &Piece{
		ID:    id,
		Kind:  ShapeCustom,
		shape: copyShape(shape),
	}, nil
}

func copyShape(src Shape) Shape {
	shape := make(Shape, len(src))
	for i := range src {
		shape[i] = make([]Cell, len(src[i]))
		copy(shape[i], src[i])
	}
	return shape
}

// Shape returns a copy of the piece's occupancy matrix.
func (p *Piece) Shape() Shape {
	return copyShape(p.shape)
}

func (p *Piece) Rows() int {
	return len(p.shape)
}

func (p *Piece) Cols() int {
	if len(p.shape) == 0 {
		return 0
	}
	return len(p.shape[0])
}

func (p *Piece) Occupied(row, col int) bool {
	if row < 0 || row >= len(p.shape) || col < 0 || col >= len(p.shape[row]) {
		return false
	}
	return p.shape[row][col] == Filled
}

// Cells returns the offsets of every occupied shape cell.
func (p *Piece) Cells() []Position {
	var out []Position
	for r, row := range p.shape {
		for c, cell := range row {
			if cell == Filled {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// Size is the number of occupied cells.
func (p *Piece) Size() int {
	return len(p.Cells())
}

func (p *Piece) Color() int {
	return p.Kind.Color()
}
