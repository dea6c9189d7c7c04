package i

import (
	"context"

	dmn "github.com/beka-birhanu/loopgrid/domain"
	"github.com/google/uuid"
)

// SolveSubmission is a player's claim to have solved a puzzle.
// Spins holds the clockwise quarter turns applied to every cell, indexed [y][x].
type SolveSubmission struct {
	PlayerID   uuid.UUID
	Username   string
	Width      int
	Height     int
	Seed       uint64
	Spins      [][]int
	Moves      int
	DurationMs int64
}

// SolveService verifies and records solves.
type SolveService interface {
	Submit(ctx context.Context, s SolveSubmission) (*dmn.Solve, error)
	History(ctx context.Context, playerID uuid.UUID) ([]*dmn.Solve, error)
	Leaderboard(ctx context.Context, width, height int) ([]LeaderboardEntry, error)
}
