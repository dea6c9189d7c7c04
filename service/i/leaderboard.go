package i

import (
	"context"
	"time"
)

// LeaderboardEntry is one ranked player on a board size.
type LeaderboardEntry struct {
	Username string
	Best     time.Duration
}

// Leaderboard ranks players by their fastest solve per board size.
type Leaderboard interface {
	// Record offers a solve time for a player. Only an improvement replaces the stored time.
	// It reports whether the stored time changed.
	Record(ctx context.Context, width, height int, username string, d time.Duration) (bool, error)

	// Top returns the fastest players for a board size, fastest first.
	Top(ctx context.Context, width, height int, n int64) ([]LeaderboardEntry, error)
}
