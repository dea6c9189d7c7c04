// Package domain holds the records the service keeps about players: accounts and the puzzles
// they have proven to have solved. Puzzles themselves are never stored; a seed and a size are
// enough to regenerate one.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Solve errors.
var (
	ErrInvalidDuration = errors.New("duration must not be negative")
	ErrInvalidMoves    = errors.New("moves must not be negative")
	ErrInvalidSize     = errors.New("board size must be positive")
)

// Solve records a verified solution of the puzzle generated from Seed at Width × Height.
type Solve struct {
	ID       uuid.UUID
	PlayerID uuid.UUID
	Width    int
	Height   int
	Seed     uint64
	Moves    int
	Duration time.Duration
	SolvedAt time.Time
}

// SolveConfig holds the parameters of a solve submission.
type SolveConfig struct {
	PlayerID uuid.UUID
	Width    int
	Height   int
	Seed     uint64
	Moves    int
	Duration time.Duration
}

// NewSolve validates a submission and stamps it with a fresh ID and the current time.
func NewSolve(config SolveConfig) (*Solve, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, ErrInvalidSize
	}
	if config.Duration < 0 {
		return nil, ErrInvalidDuration
	}
	if config.Moves < 0 {
		return nil, ErrInvalidMoves
	}

	return &Solve{
		ID:       uuid.New(),
		PlayerID: config.PlayerID,
		Width:    config.Width,
		Height:   config.Height,
		Seed:     config.Seed,
		Moves:    config.Moves,
		Duration: config.Duration,
		SolvedAt: time.Now().UTC(),
	}, nil
}
