package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/loopgrid/board"
	"github.com/beka-birhanu/loopgrid/config"
	dmn "github.com/beka-birhanu/loopgrid/domain"
	"github.com/beka-birhanu/loopgrid/game"
	"github.com/beka-birhanu/loopgrid/generator"
	"github.com/beka-birhanu/loopgrid/service/i"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit    = 50
	defaultLeaderboardSize = 10
)

// Solve errors.
var (
	ErrSpinShape = errors.New("spins must have one entry per cell")
	ErrNotSolved = errors.New("the spins do not solve the puzzle")
)

// SolveOptions configures a Solves service. Zero values fall back to defaults.
type SolveOptions struct {
	MinDimension    int
	MaxDimension    int
	HistoryLimit    int64
	LeaderboardSize int64
}

var _ i.SolveService = &Solves{}

// Solves verifies solve submissions by regenerating the puzzle from its seed, records them and
// keeps the leaderboard.
type Solves struct {
	solveRepo   i.SolveRepo
	leaderboard i.Leaderboard
	logger      i.Logger
	opts        SolveOptions
}

// NewSolveService creates a Solves service.
func NewSolveService(solveRepo i.SolveRepo, leaderboard i.Leaderboard, logger i.Logger, opts *SolveOptions) (*Solves, error) {
	if solveRepo == nil || leaderboard == nil || logger == nil {
		return nil, errors.New("solve service: missing dependency")
	}

	o := SolveOptions{}
	if opts != nil {
		o = *opts
	}
	if o.MinDimension <= 0 {
		o.MinDimension = config.DefaultMinDimension
	}
	if o.MaxDimension < o.MinDimension {
		o.MaxDimension = max(config.DefaultMaxDimension, o.MinDimension)
	}
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = defaultHistoryLimit
	}
	if o.LeaderboardSize <= 0 {
		o.LeaderboardSize = defaultLeaderboardSize
	}

	return &Solves{
		solveRepo:   solveRepo,
		leaderboard: leaderboard,
		logger:      logger,
		opts:        o,
	}, nil
}

// Verify regenerates the puzzle and applies the submitted spins to it.
// It returns ErrNotSolved when the resulting board is not solved.
func (s *Solves) Verify(width, height int, seed uint64, spins [][]int) error {
	if err := game.CheckDimensions(width, height, s.opts.MinDimension, s.opts.MaxDimension); err != nil {
		return err
	}
	if len(spins) != height {
		return ErrSpinShape
	}
	for _, row := range spins {
		if len(row) != width {
			return ErrSpinShape
		}
	}

	b, err := generator.Generate(width, height, seed)
	if err != nil {
		return err
	}
	for y, row := range spins {
		for x, k := range row {
			b.SpinCell(board.Coord{X: x, Y: y}, k)
		}
	}

	if !b.CheckOK() {
		return ErrNotSolved
	}
	return nil
}

// Submit verifies a solve and records it.
// A leaderboard failure is logged and does not reject an otherwise valid solve.
func (s *Solves) Submit(ctx context.Context, sub i.SolveSubmission) (*dmn.Solve, error) {
	if err := s.Verify(sub.Width, sub.Height, sub.Seed, sub.Spins); err != nil {
		return nil, err
	}

	solve, err := dmn.NewSolve(dmn.SolveConfig{
		PlayerID: sub.PlayerID,
		Width:    sub.Width,
		Height:   sub.Height,
		Seed:     sub.Seed,
		Moves:    sub.Moves,
		Duration: time.Duration(sub.DurationMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	if err := s.solveRepo.Save(ctx, solve); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save solve: %s", err))
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("Solve recorded: Player=%s Size=%dx%d Seed=%d Moves=%d", sub.PlayerID, sub.Width, sub.Height, sub.Seed, sub.Moves))

	improved, err := s.leaderboard.Record(ctx, sub.Width, sub.Height, sub.Username, solve.Duration)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Leaderboard update failed for %s: %s", sub.Username, err))
	} else if improved {
		s.logger.Info(fmt.Sprintf("New best time for %s on %dx%d: %s", sub.Username, sub.Width, sub.Height, solve.Duration))
	}

	return solve, nil
}

// History returns the player's most recent solves.
func (s *Solves) History(ctx context.Context, playerID uuid.UUID) ([]*dmn.Solve, error) {
	return s.solveRepo.ByPlayer(ctx, playerID, s.opts.HistoryLimit)
}

// Leaderboard returns the fastest players for a board size.
func (s *Solves) Leaderboard(ctx context.Context, width, height int) ([]i.LeaderboardEntry, error) {
	if err := game.CheckDimensions(width, height, s.opts.MinDimension, s.opts.MaxDimension); err != nil {
		return nil, err
	}
	return s.leaderboard.Top(ctx, width, height, s.opts.LeaderboardSize)
}
