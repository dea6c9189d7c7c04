/*
Package board models the connector puzzle: a rectangular grid of cells, each exposing stubs on
some of its four sides.

A board is solved when every stub on every shared edge is matched by the neighbour's stub and no
stub points off the grid. Cells are only ever changed by rotating them in quarter turns.
*/
package board

import (
	"errors"
	"strings"
)

var (
	// ErrNonRectangular indicates a grid whose rows differ in length.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrInvalidMask indicates a connector mask outside the four direction bits.
	ErrInvalidMask = errors.New("board: connector mask out of range")
)

// Board is a width × height grid of cells. Grid is indexed [y][x].
type Board struct {
	width  int
	height int
	grid   [][]Cell
}

// New wraps a pre-populated row-major grid. The board takes ownership of grid.
// The width is taken from the first row, so an empty grid yields a 0×0 board.
func New(grid [][]Cell) (*Board, error) {
	width := 0
	if len(grid) > 0 {
		width = len(grid[0])
	}
	return NewSized(width, len(grid), grid)
}

// NewSized wraps grid as a width × height board. Every row must hold exactly width cells, so a
// board with no rows still keeps its width.
func NewSized(width, height int, grid [][]Cell) (*Board, error) {
	if width < 0 || len(grid) != height {
		return nil, ErrNonRectangular
	}
	for _, row := range grid {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	return &Board{
		width:  width,
		height: height,
		grid:   grid,
	}, nil
}

// NewEmpty creates a board of the given size filled with cells that expose nothing.
// Non-positive dimensions collapse to zero.
func NewEmpty(width, height int) *Board {
	width, height = max(width, 0), max(height, 0)
	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}
	return &Board{width: width, height: height, grid: grid}
}

// FromMasks builds a board from raw connector masks, indexed [y][x].
func FromMasks(masks [][]uint8) (*Board, error) {
	grid := make([][]Cell, len(masks))
	for y, row := range masks {
		grid[y] = make([]Cell, len(row))
		for x, m := range row {
			set := ConnectorSet(m)
			if !set.Valid() {
				return nil, ErrInvalidMask
			}
			grid[y][x] = NewCell(set)
		}
	}
	return New(grid)
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBound reports whether pos lies on the board.
func (b *Board) InBound(pos Coord) bool {
	return pos.X >= 0 && pos.X < b.width && pos.Y >= 0 && pos.Y < b.height
}

// Cell returns the cell at pos. The second result is false when pos is off the board.
func (b *Board) Cell(pos Coord) (Cell, bool) {
	if !b.InBound(pos) {
		return Cell{}, false
	}
	return b.grid[pos.Y][pos.X], true
}

// GetOrDefault returns a handle to the cell at pos. Every position on the board always holds a
// cell, so in-bound lookups never miss. Positions off the board get a fresh empty cell that is
// not attached to the grid, so writes through it are dropped rather than failing.
func (b *Board) GetOrDefault(pos Coord) *Cell {
	if !b.InBound(pos) {
		return &Cell{}
	}
	return &b.grid[pos.Y][pos.X]
}

// RotateCell turns the cell at pos a quarter turn in the sense of rot. No other cell is touched.
func (b *Board) RotateCell(pos Coord, rot Rotation) {
	b.SpinCell(pos, rot.Steps())
}

// SpinCell turns the cell at pos by steps clockwise quarter turns.
func (b *Board) SpinCell(pos Coord, steps int) {
	c := b.GetOrDefault(pos)
	*c = c.Rotate(steps)
}

// neighbor returns the cell adjacent to pos on side dir, or nil at the boundary.
func (b *Board) neighbor(pos Coord, dir Direction) *Cell {
	npos := pos.Step(dir)
	if !b.InBound(npos) {
		return nil
	}
	return &b.grid[npos.Y][npos.X]
}

// CheckOK reports whether the board is solved.
//
// Each cell checks its East and South edges. Cells in the first column also check West and
// cells in the first row also check North, so every edge of the grid, internal or boundary,
// is tested exactly once.
func (b *Board) CheckOK() bool {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			pos := Coord{X: x, Y: y}
			cell := b.grid[y][x]

			if !cell.FitsWith(b.neighbor(pos, East), East) || !cell.FitsWith(b.neighbor(pos, South), South) {
				return false
			}
			if x == 0 && !cell.FitsWith(nil, West) {
				return false
			}
			if y == 0 && !cell.FitsWith(nil, North) {
				return false
			}
		}
	}
	return true
}

// CheckSingleCellOK reports whether every stub of the cell at pos is answered by its neighbour.
// A side without a stub is always fine, so this flags only the cells that point at nothing.
// Positions off the board have nothing to validate and report true.
func (b *Board) CheckSingleCellOK(pos Coord) bool {
	here, ok := b.Cell(pos)
	if !ok {
		return true
	}

	for _, dir := range here.Connectors().Members() {
		n := b.neighbor(pos, dir)
		if n == nil || !n.Exposes(dir.Opposite()) {
			return false
		}
	}
	return true
}

// InvalidCells returns the positions whose single-cell check fails, in row-major order.
func (b *Board) InvalidCells() []Coord {
	var out []Coord
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			pos := Coord{X: x, Y: y}
			if !b.CheckSingleCellOK(pos) {
				out = append(out, pos)
			}
		}
	}
	return out
}

// Masks returns a copy of the connector masks, indexed [y][x].
func (b *Board) Masks() [][]uint8 {
	out := make([][]uint8, b.height)
	for y, row := range b.grid {
		out[y] = make([]uint8, b.width)
		for x, c := range row {
			out[y][x] = uint8(c.connectors)
		}
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	grid := make([][]Cell, b.height)
	for y, row := range b.grid {
		grid[y] = append([]Cell(nil), row...)
	}
	return &Board{width: b.width, height: b.height, grid: grid}
}

// Rows renders the board one string per row.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	for y, row := range b.grid {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(c.Render())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the board as newline separated rows of glyphs.
func (b *Board) String() string {
	var output string
	for _, row := range b.Rows() {
		output += row + "\n"
	}
	return output
}
