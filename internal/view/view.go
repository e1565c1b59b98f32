// Package view derives what a frontend draws from engine state. Nothing
// here is ever written back into a game.Board.
package view

import (
	"strings"

	"github.com/hersh/go1010/internal/game"
)

type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkFilled
	// MarkPreview is an empty cell the hovered piece would fill.
	MarkPreview
	// MarkConflict is an in-bounds cell of a hover that cannot be placed.
	MarkConflict
	// MarkClearing is a cell on a line the hovered placement would clear.
	MarkClearing
)

type Grid [][]Mark

// Project lays the hovered piece over the board. A nil piece yields the
// plain board.
func Project(b *game.Board, p *game.Piece, at game.Position) Grid {
	grid := make(Grid, b.Rows)
	for y := range grid {
		grid[y] = make([]Mark, b.Cols)
		for x := range grid[y] {
			if b.At(y, x) == game.Filled {
				grid[y][x] = MarkFilled
			}
		}
	}
	if p == nil {
		return grid
	}

	if !b.CanPlace(p, at) {
		for _, off := range p.Cells() {
			row, col := at.Row+off.Row, at.Col+off.Col
			if b.In(row, col) {
				grid[row][col] = MarkConflict
			}
		}
		return grid
	}

	rows, cols := b.Place(p, at).FullLines()
	for _, y := range rows {
		for x := 0; x < b.Cols; x++ {
			grid[y][x] = MarkClearing
		}
	}
	for _, x := range cols {
		for y := 0; y < b.Rows; y++ {
			grid[y][x] = MarkClearing
		}
	}
	for _, off := range p.Cells() {
		row, col := at.Row+off.Row, at.Col+off.Col
		if grid[row][col] == MarkEmpty {
			grid[row][col] = MarkPreview
		}
	}
	return grid
}

// Count returns how many cells carry mark m.
func (g Grid) Count(m Mark) int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c == m {
				n++
			}
		}
	}
	return n
}

// String renders the grid with one rune per mark, for tests and logs.
func (g Grid) String() string {
	glyphs := map[Mark]byte{
		MarkEmpty:    '.',
		MarkFilled:   '#',
		MarkPreview:  'o',
		MarkConflict: 'x',
		MarkClearing: '*',
	}
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteByte(glyphs[c])
		}
	}
	return sb.String()
}
