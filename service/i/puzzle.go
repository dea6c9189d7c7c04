package i

import "github.com/beka-birhanu/loopgrid/board"

// PuzzleService generates puzzles and parses boards for validation.
type PuzzleService interface {
	Generate(width, height int, seed *uint64) (*board.Board, uint64, error)
	Check(masks [][]uint8) (*board.Board, error)
}
