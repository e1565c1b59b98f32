package game

import "strings"

const (
	DefaultRows = 10
	DefaultCols = 10
)

// Cell is the occupancy of one board square. Only Empty and Filled are
// ever stored on a Board.
type Cell uint8

const (
	Empty Cell = iota
	Filled
)

// Position anchors the top-left of a piece's shape matrix on the board.
type Position struct {
	Row int
	Col int
}

type Board struct {
	Cells [][]Cell
	Rows  int
	Cols  int
}

// NewBoard returns a rows x cols board with every cell empty.
func NewBoard(rows, cols int) *Board {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Board{
		Cells: cells,
		Rows:  rows,
		Cols:  cols,
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]Cell, b.Rows)
	for i := range cells {
		cells[i] = make([]Cell, b.Cols)
		copy(cells[i], b.Cells[i])
	}
	return &Board{
		Cells: cells,
		Rows:  b.Rows,
		Cols:  b.Cols,
	}
}

func (b *Board) In(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// At reports the cell at (row, col). Out-of-range squares read as Filled
// so callers treating the edge as a wall need no extra check.
func (b *Board) At(row, col int) Cell {
	if !b.In(row, col) {
		return Filled
	}
	return b.Cells[row][col]
}

// IsEmpty reports whether no cell is filled.
func (b *Board) IsEmpty() bool {
	for _, row := range b.Cells {
		for _, c := range row {
			if c != Empty {
				return false
			}
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c == Filled {
				n++
			}
		}
	}
	return n
}

// CanPlace reports whether p fits at pos. Only occupied shape cells are
// checked; an empty shape cell may hang off the board. A piece with no
// occupied cells never fits.
func (b *Board) CanPlace(p *Piece, pos Position) bool {
	if p == nil || p.Size() == 0 {
		return false
	}
	for r, row := range p.shape {
		for c, cell := range row {
			if cell != Filled {
				continue
			}
			boardRow := pos.Row + r
			boardCol := pos.Col + c
			if !b.In(boardRow, boardCol) {
				return false
			}
			if b.Cells[boardRow][boardCol] != Empty {
				return false
			}
		}
	}
	return true
}

// Place returns a copy of the board with p written at pos. It does not
// validate; callers check CanPlace first. Cells falling off the board are
// skipped.
func (b *Board) Place(p *Piece, pos Position) *Board {
	next := b.Clone()
	for r, row := range p.shape {
		for c, cell := range row {
			if cell != Filled {
				continue
			}
			boardRow := pos.Row + r
			boardCol := pos.Col + c
			if next.In(boardRow, boardCol) {
				next.Cells[boardRow][boardCol] = Filled
			}
		}
	}
	return next
}

// FullLines returns the indexes of every full row and every full column,
// both taken from the same snapshot of the board.
func (b *Board) FullLines() (rows, cols []int) {
	if b.Rows == 0 || b.Cols == 0 {
		return nil, nil
	}
	for y := 0; y < b.Rows; y++ {
		full := true
		for x := 0; x < b.Cols; x++ {
			if b.Cells[y][x] != Filled {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	for x := 0; x < b.Cols; x++ {
		full := true
		for y := 0; y < b.Rows; y++ {
			if b.Cells[y][x] != Filled {
				full = false
				break
			}
		}
		if full {
			cols = append(cols, x)
		}
	}
	return rows, cols
}

// ClearFullLines empties every full row and column and returns the new
// board with the number of lines cleared. A row and a column crossing at
// one cell count as two lines.
func (b *Board) ClearFullLines() (*Board, int) {
	rows, cols := b.FullLines()
	next := b.Clone()
	for _, y := range rows {
		for x := 0; x < next.Cols; x++ {
			next.Cells[y][x] = Empty
		}
	}
	for _, x := range cols {
		for y := 0; y < next.Rows; y++ {
			next.Cells[y][x] = Empty
		}
	}
	return next, len(rows) + len(cols)
}

// Placements lists every anchor where p fits, in row-major order.
func (b *Board) Placements(p *Piece) []Position {
	var out []Position
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			pos := Position{Row: row, Col: col}
			if b.CanPlace(p, pos) {
				out = append(out, pos)
			}
		}
	}
	return out
}

// Fits reports whether p has at least one legal anchor.
func (b *Board) Fits(p *Piece) bool {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if b.CanPlace(p, Position{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}

// String renders the board with '#' for filled and '.' for empty cells,
// one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.Cells {
		for _, c := range row {
			if c == Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y < len(b.Cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// BoardFromRows builds a board from strings of '#' (filled) and any other
// byte (empty). Rows shorter than the widest one are padded with empty
// cells.
func BoardFromRows(rows ...string) *Board {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	b := NewBoard(len(rows), cols)
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == '#' {
				b.Cells[y][x] = Filled
			}
		}
	}
	return b
}
