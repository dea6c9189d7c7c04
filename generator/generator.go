/*
Package generator builds connector puzzles that are solvable by construction.

Every edge of the grid is decided up front: interior edges are lit or unlit at random and
boundary edges are always unlit. Each cell then takes the stubs of its four edges, which yields
a solved board, and finally every cell is spun by a random number of quarter turns.
Undoing the spins restores the solved board, so generation can never fail.
*/
package generator

import (
	"errors"
	"math/rand/v2"

	"github.com/beka-birhanu/loopgrid/board"
)

// ErrInvalidDimensions is returned for a negative width or height.
var ErrInvalidDimensions = errors.New("generator: width and height must not be negative")

// edges holds the lit/unlit state of every edge of a width × height grid.
// vertical[x][y] is the edge on the west side of column x (x in [0, width]);
// horizontal[x][y] is the edge on the north side of row y (y in [0, height]).
type edges struct {
	vertical   [][]bool
	horizontal [][]bool
}

func newEdges(width, height int) *edges {
	vertical := make([][]bool, width+1)
	for x := range vertical {
		vertical[x] = make([]bool, height)
	}
	horizontal := make([][]bool, width)
	for x := range horizontal {
		horizontal[x] = make([]bool, height+1)
	}
	return &edges{vertical: vertical, horizontal: horizontal}
}

// light draws every interior edge. Boundary edges are never written and stay unlit.
func (e *edges) light(width, height int, r *rand.Rand) {
	for x := 1; x < width; x++ {
		for y := 0; y < height; y++ {
			e.vertical[x][y] = r.IntN(2) == 1
		}
	}
	for x := 0; x < width; x++ {
		for y := 1; y < height; y++ {
			e.horizontal[x][y] = r.IntN(2) == 1
		}
	}
}

// connectors derives the stubs of the cell at (x, y) from its four edges.
func (e *edges) connectors(x, y int) board.ConnectorSet {
	set := board.Empty
	if e.horizontal[x][y] {
		set = set.With(board.North)
	}
	if e.horizontal[x][y+1] {
		set = set.With(board.South)
	}
	if e.vertical[x][y] {
		set = set.With(board.West)
	}
	if e.vertical[x+1][y] {
		set = set.With(board.East)
	}
	return set
}

// NewRand returns the deterministic source used for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// RandomSeed draws a seed from the process-wide random source.
func RandomSeed() uint64 {
	return rand.Uint64()
}

// Generate builds a scrambled puzzle of the given size. The same seed always yields the same board.
func Generate(width, height int, seed uint64) (*board.Board, error) {
	return GenerateFrom(width, height, NewRand(seed))
}

// GenerateFrom builds a scrambled puzzle drawing from r. r is consumed sequentially and must not
// be shared with concurrent callers.
func GenerateFrom(width, height int, r *rand.Rand) (*board.Board, error) {
	b, _, err := generate(width, height, r)
	return b, err
}

// Solution returns the solved board from which Generate(width, height, seed) was scrambled.
// A puzzle may have other solutions as well.
func Solution(width, height int, seed uint64) (*board.Board, error) {
	b, spins, err := generate(width, height, NewRand(seed))
	if err != nil {
		return nil, err
	}
	for y, row := range spins {
		for x, k := range row {
			b.SpinCell(board.Coord{X: x, Y: y}, -k)
		}
	}
	return b, nil
}

// generate returns the scrambled board and the clockwise spin applied to every cell, indexed [y][x].
func generate(width, height int, r *rand.Rand) (*board.Board, [][]int, error) {
	if width < 0 || height < 0 {
		return nil, nil, ErrInvalidDimensions
	}

	e := newEdges(width, height)
	e.light(width, height, r)

	grid := make([][]board.Cell, height)
	spins := make([][]int, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]board.Cell, width)
		spins[y] = make([]int, width)
		for x := 0; x < width; x++ {
			grid[y][x] = board.NewCell(e.connectors(x, y))
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			k := r.IntN(4)
			spins[y][x] = k
			grid[y][x] = grid[y][x].Rotate(k)
		}
	}

	b, err := board.NewSized(width, height, grid)
	if err != nil {
		return nil, nil, err
	}
	return b, spins, nil
}
