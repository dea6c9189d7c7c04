package service

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/loopgrid/board"
	"github.com/beka-birhanu/loopgrid/game"
	"github.com/beka-birhanu/loopgrid/generator"
	"github.com/beka-birhanu/loopgrid/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSolves(t *testing.T) (*Solves, *memSolveRepo, *memLeaderboard) {
	t.Helper()
	repo := &memSolveRepo{}
	lb := newMemLeaderboard()
	svc, err := NewSolveService(repo, lb, nopLogger{}, &SolveOptions{MinDimension: 2, MaxDimension: 12})
	require.NoError(t, err)
	return svc, repo, lb
}

func TestNewSolveServiceDefaults(t *testing.T) {
	svc, err := NewSolveService(&memSolveRepo{}, newMemLeaderboard(), nopLogger{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, svc.opts.MinDimension)
	assert.Equal(t, 20, svc.opts.MaxDimension)
	assert.EqualValues(t, defaultHistoryLimit, svc.opts.HistoryLimit)
	assert.EqualValues(t, defaultLeaderboardSize, svc.opts.LeaderboardSize)

	_, err = NewSolveService(nil, newMemLeaderboard(), nopLogger{}, nil)
	assert.Error(t, err)
}

func TestSolvesSubmit(t *testing.T) {
	ctx := context.Background()
	player := uuid.New()

	t.Run("Accepts spins that solve the puzzle", func(t *testing.T) {
		svc, repo, lb := newSolves(t)
		sub := i.SolveSubmission{
			PlayerID:   player,
			Username:   "solver",
			Width:      6,
			Height:     4,
			Seed:       31337,
			Spins:      solvingSpins(6, 4, 31337),
			Moves:      17,
			DurationMs: 42_000,
		}

		solve, err := svc.Submit(ctx, sub)
		require.NoError(t, err)
		assert.Equal(t, player, solve.PlayerID)
		assert.Equal(t, 42*time.Second, solve.Duration)
		assert.Len(t, repo.solves, 1)
		assert.Equal(t, 42*time.Second, lb.best["solver"])
	})

	t.Run("Rejects spins that leave the puzzle broken", func(t *testing.T) {
		svc, repo, _ := newSolves(t)

		// Turning a dead end away from its partner always breaks a solved board.
		var seed uint64
		var target board.Coord
		found := false
		for seed = 1; !found; seed++ {
			solved, err := generator.Solution(5, 5, seed)
			require.NoError(t, err)
			for y := 0; y < 5 && !found; y++ {
				for x := 0; x < 5 && !found; x++ {
					c, _ := solved.Cell(board.Coord{X: x, Y: y})
					if c.Connectors().Count() == 1 {
						target, found = board.Coord{X: x, Y: y}, true
					}
				}
			}
		}
		seed--

		spins := solvingSpins(5, 5, seed)
		require.NoError(t, svc.Verify(5, 5, seed, spins))
		spins[target.Y][target.X]++

		assert.ErrorIs(t, svc.Verify(5, 5, seed, spins), ErrNotSolved)
		_, err := svc.Submit(ctx, i.SolveSubmission{PlayerID: player, Width: 5, Height: 5, Seed: seed, Spins: spins})
		assert.ErrorIs(t, err, ErrNotSolved)
		assert.Empty(t, repo.solves)
	})

	t.Run("Rejects malformed spin grids", func(t *testing.T) {
		svc, _, _ := newSolves(t)
		_, err := svc.Submit(ctx, i.SolveSubmission{Width: 3, Height: 2, Spins: [][]int{{0, 0, 0}}})
		assert.ErrorIs(t, err, ErrSpinShape)
		_, err = svc.Submit(ctx, i.SolveSubmission{Width: 3, Height: 2, Spins: [][]int{{0, 0, 0}, {0, 0}}})
		assert.ErrorIs(t, err, ErrSpinShape)
	})

	t.Run("Rejects sizes out of range", func(t *testing.T) {
		svc, _, _ := newSolves(t)
		_, err := svc.Submit(ctx, i.SolveSubmission{Width: 13, Height: 2})
		assert.ErrorIs(t, err, game.ErrDimensionOutOfRange)
	})

	t.Run("Repository failure rejects the solve", func(t *testing.T) {
		svc, repo, _ := newSolves(t)
		repo.err = errStore
		_, err := svc.Submit(ctx, i.SolveSubmission{
			PlayerID: player, Username: "solver", Width: 3, Height: 3, Seed: 1, Spins: solvingSpins(3, 3, 1),
		})
		assert.ErrorIs(t, err, errStore)
	})

	t.Run("Leaderboard failure keeps the solve", func(t *testing.T) {
		svc, repo, lb := newSolves(t)
		lb.err = errStore
		_, err := svc.Submit(ctx, i.SolveSubmission{
			PlayerID: player, Username: "solver", Width: 3, Height: 3, Seed: 1, Spins: solvingSpins(3, 3, 1),
		})
		assert.NoError(t, err)
		assert.Len(t, repo.solves, 1)
	})
}

func TestSolvesHistoryAndLeaderboard(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSolves(t)
	alice, bob := uuid.New(), uuid.New()

	submit := func(id uuid.UUID, name string, seed uint64, ms int64) {
		_, err := svc.Submit(ctx, i.SolveSubmission{
			PlayerID: id, Username: name, Width: 4, Height: 4, Seed: seed,
			Spins: solvingSpins(4, 4, seed), DurationMs: ms,
		})
		require.NoError(t, err)
	}
	submit(alice, "alice", 1, 9000)
	submit(bob, "bob", 2, 5000)
	submit(alice, "alice", 3, 4000)

	history, err := svc.History(ctx, alice)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, uint64(3), history[0].Seed)

	top, err := svc.Leaderboard(ctx, 4, 4)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "alice", top[0].Username)
	assert.Equal(t, 4*time.Second, top[0].Best)

	_, err = svc.Leaderboard(ctx, 1, 4)
	assert.ErrorIs(t, err, game.ErrDimensionOutOfRange)
}
