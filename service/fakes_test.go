package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/beka-birhanu/loopgrid/board"
	dmn "github.com/beka-birhanu/loopgrid/domain"
	"github.com/beka-birhanu/loopgrid/generator"
	"github.com/beka-birhanu/loopgrid/service/i"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*dmn.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*dmn.User{}}
}

func (r *memUserRepo) Save(_ context.Context, user *dmn.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

func (r *memUserRepo) ByUsername(_ context.Context, username string) (*dmn.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

type memSolveRepo struct {
	solves []*dmn.Solve
	err    error
}

func (r *memSolveRepo) Save(_ context.Context, s *dmn.Solve) error {
	if r.err != nil {
		return r.err
	}
	r.solves = append(r.solves, s)
	return nil
}

func (r *memSolveRepo) ByPlayer(_ context.Context, id uuid.UUID, limit int64) ([]*dmn.Solve, error) {
	var out []*dmn.Solve
	for j := len(r.solves) - 1; j >= 0 && int64(len(out)) < limit; j-- {
		if r.solves[j].PlayerID == id {
			out = append(out, r.solves[j])
		}
	}
	return out, nil
}

type memLeaderboard struct {
	best map[string]time.Duration
	err  error
}

func newMemLeaderboard() *memLeaderboard {
	return &memLeaderboard{best: map[string]time.Duration{}}
}

func (l *memLeaderboard) Record(_ context.Context, _, _ int, username string, d time.Duration) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if cur, ok := l.best[username]; ok && cur <= d {
		return false, nil
	}
	l.best[username] = d
	return true, nil
}

func (l *memLeaderboard) Top(_ context.Context, _, _ int, n int64) ([]i.LeaderboardEntry, error) {
	var out []i.LeaderboardEntry
	for name, d := range l.best {
		out = append(out, i.LeaderboardEntry{Username: name, Best: d})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Best < out[b].Best })
	if int64(len(out)) > n {
		out = out[:n]
	}
	return out, nil
}

var errStore = errors.New("store down")

// solvingSpins returns per-cell clockwise turns that take the generated puzzle to its solution.
func solvingSpins(width, height int, seed uint64) [][]int {
	scrambled, _ := generator.Generate(width, height, seed)
	solved, _ := generator.Solution(width, height, seed)

	spins := make([][]int, height)
	for y := range spins {
		spins[y] = make([]int, width)
		for x := range spins[y] {
			pos := board.Coord{X: x, Y: y}
			have, _ := scrambled.Cell(pos)
			want, _ := solved.Cell(pos)
			for k := 0; k < 4; k++ {
				if have.Rotate(k) == want {
					spins[y][x] = k
					break
				}
			}
		}
	}
	return spins
}
