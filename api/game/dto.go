// Package gameapi exposes puzzle generation, board checks, solve submission and leaderboards.
package gameapi

import (
	"time"

	"github.com/beka-birhanu/loopgrid/board"
	dmn "github.com/beka-birhanu/loopgrid/domain"
	"github.com/beka-birhanu/loopgrid/service/i"
)

// PuzzleQuery selects the puzzle to generate. Seed is optional.
type PuzzleQuery struct {
	Width  int     `form:"width" binding:"required"`
	Height int     `form:"height" binding:"required"`
	Seed   *uint64 `form:"seed"`
}

// PuzzleResponse is a generated puzzle. Cells holds connector masks indexed [y][x]
// with North=1, East=2, South=4 and West=8.
type PuzzleResponse struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Seed   uint64   `json:"seed,string"`
	Cells  [][]int  `json:"cells"`
	Rows   []string `json:"rows"`
	Solved bool     `json:"solved"`
}

// CheckRequest carries a board to validate.
type CheckRequest struct {
	Cells [][]int `json:"cells" binding:"required"`
}

// CoordDTO is a board position.
type CoordDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CheckResponse reports whether a board is solved and which cells have unanswered stubs.
type CheckResponse struct {
	Solved       bool       `json:"solved"`
	InvalidCells []CoordDTO `json:"invalid_cells"`
}

// SolveRequest claims a solution: the clockwise quarter turns applied to each cell of the
// puzzle generated from Seed, indexed [y][x].
type SolveRequest struct {
	Width      int     `json:"width" binding:"required"`
	Height     int     `json:"height" binding:"required"`
	Seed       uint64  `json:"seed,string"`
	Spins      [][]int `json:"spins" binding:"required"`
	Moves      int     `json:"moves"`
	DurationMs int64   `json:"duration_ms"`
}

// SolveResponse is a recorded solve.
type SolveResponse struct {
	ID         string    `json:"id"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Seed       uint64    `json:"seed,string"`
	Moves      int       `json:"moves"`
	DurationMs int64     `json:"duration_ms"`
	SolvedAt   time.Time `json:"solved_at"`
}

// LeaderboardQuery selects a board size.
type LeaderboardQuery struct {
	Width  int `form:"width" binding:"required"`
	Height int `form:"height" binding:"required"`
}

// LeaderboardEntryResponse is one ranked player.
type LeaderboardEntryResponse struct {
	Rank       int    `json:"rank"`
	Username   string `json:"username"`
	DurationMs int64  `json:"duration_ms"`
}

func newPuzzleResponse(b *board.Board, seed uint64) *PuzzleResponse {
	return &PuzzleResponse{
		Width:  b.Width(),
		Height: b.Height(),
		Seed:   seed,
		Cells:  masksToInts(b.Masks()),
		Rows:   b.Rows(),
		Solved: b.CheckOK(),
	}
}

func newCheckResponse(b *board.Board) *CheckResponse {
	invalid := make([]CoordDTO, 0)
	for _, c := range b.InvalidCells() {
		invalid = append(invalid, CoordDTO{X: c.X, Y: c.Y})
	}
	return &CheckResponse{
		Solved:       b.CheckOK(),
		InvalidCells: invalid,
	}
}

func newSolveResponse(s *dmn.Solve) SolveResponse {
	return SolveResponse{
		ID:         s.ID.String(),
		Width:      s.Width,
		Height:     s.Height,
		Seed:       s.Seed,
		Moves:      s.Moves,
		DurationMs: s.Duration.Milliseconds(),
		SolvedAt:   s.SolvedAt,
	}
}

func newLeaderboardResponse(entries []i.LeaderboardEntry) []LeaderboardEntryResponse {
	out := make([]LeaderboardEntryResponse, 0, len(entries))
	for n, e := range entries {
		out = append(out, LeaderboardEntryResponse{
			Rank:       n + 1,
			Username:   e.Username,
			DurationMs: e.Best.Milliseconds(),
		})
	}
	return out
}

func masksToInts(masks [][]uint8) [][]int {
	out := make([][]int, len(masks))
	for y, row := range masks {
		out[y] = make([]int, len(row))
		for x, m := range row {
			out[y][x] = int(m)
		}
	}
	return out
}

// intsToMasks narrows client cells to masks. Values outside a byte are reported as invalid.
func intsToMasks(cells [][]int) ([][]uint8, bool) {
	out := make([][]uint8, len(cells))
	for y, row := range cells {
		out[y] = make([]uint8, len(row))
		for x, v := range row {
			if v < 0 || v > 0xff {
				return nil, false
			}
			out[y][x] = uint8(v)
		}
	}
	return out, true
}
