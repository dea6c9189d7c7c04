package service

import (
	"github.com/beka-birhanu/loopgrid/board"
	"github.com/beka-birhanu/loopgrid/config"
	"github.com/beka-birhanu/loopgrid/game"
	"github.com/beka-birhanu/loopgrid/generator"
	"github.com/beka-birhanu/loopgrid/service/i"
)

var _ i.PuzzleService = &Puzzles{}

// Puzzles hands out generated puzzles and checks boards sent back by clients.
// It keeps no state between calls.
type Puzzles struct {
	minDimension int
	maxDimension int
}

// NewPuzzleService creates a Puzzles service accepting sizes in [minDim, maxDim].
// Out of range bounds fall back to the defaults.
func NewPuzzleService(minDim, maxDim int) *Puzzles {
	if minDim <= 0 {
		minDim = config.DefaultMinDimension
	}
	if maxDim < minDim {
		maxDim = max(config.DefaultMaxDimension, minDim)
	}
	return &Puzzles{minDimension: minDim, maxDimension: maxDim}
}

// Generate builds the puzzle for a size and seed. A nil seed draws a fresh one.
func (p *Puzzles) Generate(width, height int, seed *uint64) (*board.Board, uint64, error) {
	if err := game.CheckDimensions(width, height, p.minDimension, p.maxDimension); err != nil {
		return nil, 0, err
	}

	s := generator.RandomSeed()
	if seed != nil {
		s = *seed
	}

	b, err := generator.Generate(width, height, s)
	if err != nil {
		return nil, 0, err
	}
	return b, s, nil
}

// Check builds a board from client masks so it can be validated.
func (p *Puzzles) Check(masks [][]uint8) (*board.Board, error) {
	b, err := board.FromMasks(masks)
	if err != nil {
		return nil, err
	}
	if b.Width() > p.maxDimension || b.Height() > p.maxDimension {
		return nil, game.ErrDimensionOutOfRange
	}
	return b, nil
}
