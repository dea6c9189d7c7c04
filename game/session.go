// Package game holds the play session a front end drives: the board in play, the focused cell
// and whether the puzzle has been solved.
package game

import (
	"errors"
	"time"

	"github.com/beka-birhanu/loopgrid/board"
	"github.com/beka-birhanu/loopgrid/generator"
)

// Session errors.
var (
	ErrDimensionOutOfRange = errors.New("dimension is out of range")
)

// State is the progress of the puzzle in play.
type State int

const (
	Unsolved State = iota
	Solved
)

func (s State) String() string {
	if s == Solved {
		return "solved"
	}
	return "unsolved"
}

// Session is a single player's game. It is not safe for concurrent use; the owning front end
// is the only writer.
type Session struct {
	board     *board.Board
	seed      uint64
	focus     board.Coord
	state     State
	spins     [][]int // net clockwise quarter turns applied by the player, indexed [y][x]
	moves     int     // rotations performed
	highlight bool    // flag cells whose stubs point at nothing
	startedAt time.Time
	solvedAt  time.Time
	now       func() time.Time
}

// NewSession starts a puzzle of the given size generated from seed.
func NewSession(width, height int, seed uint64) (*Session, error) {
	s := &Session{now: time.Now}
	if err := s.reset(width, height, seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset(width, height int, seed uint64) error {
	b, err := generator.Generate(width, height, seed)
	if err != nil {
		return err
	}

	spins := make([][]int, b.Height())
	for y := range spins {
		spins[y] = make([]int, b.Width())
	}

	s.board = b
	s.seed = seed
	s.spins = spins
	s.moves = 0
	s.focus = board.Coord{}
	s.state = Unsolved
	s.startedAt = s.now()
	s.solvedAt = time.Time{}
	return nil
}

// NewPuzzle replaces the board wholesale with a fresh puzzle of the same size.
func (s *Session) NewPuzzle(seed uint64) error {
	return s.reset(s.board.Width(), s.board.Height(), seed)
}

// Resize replaces the board with a fresh puzzle of a new size.
func (s *Session) Resize(width, height int, seed uint64) error {
	return s.reset(width, height, seed)
}

// Rotate turns the focused cell and reports whether the puzzle is solved afterwards.
// Once solved the board is frozen and Rotate does nothing.
func (s *Session) Rotate(rot board.Rotation) bool {
	if s.state == Solved || !s.board.InBound(s.focus) {
		return s.state == Solved
	}

	s.board.RotateCell(s.focus, rot)
	row := s.spins[s.focus.Y]
	row[s.focus.X] = ((row[s.focus.X]+rot.Steps())%4 + 4) % 4
	s.moves++

	if s.board.CheckOK() {
		s.state = Solved
		s.solvedAt = s.now()
	}
	return s.state == Solved
}

// MoveFocus moves the focused cell one step in dir, wrapping around to the opposite edge of the
// board. Focus is frozen once the puzzle is solved.
func (s *Session) MoveFocus(dir board.Direction) {
	w, h := s.board.Width(), s.board.Height()
	if s.state == Solved || w == 0 || h == 0 {
		return
	}
	next := s.focus.Step(dir)
	s.focus = board.Coord{X: wrap(next.X, w), Y: wrap(next.Y, h)}
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// ToggleHighlight switches the per-cell error highlighting and returns the new setting.
func (s *Session) ToggleHighlight() bool {
	s.highlight = !s.highlight
	return s.highlight
}

// Highlighted returns the cells to mark as broken, or nil when highlighting is off.
func (s *Session) Highlighted() []board.Coord {
	if !s.highlight || s.state == Solved {
		return nil
	}
	return s.board.InvalidCells()
}

// Board returns the board in play.
func (s *Session) Board() *board.Board {
	return s.board
}

// Seed returns the seed the current puzzle was generated from.
func (s *Session) Seed() uint64 {
	return s.seed
}

// Focus returns the focused cell.
func (s *Session) Focus() board.Coord {
	return s.focus
}

// State returns whether the puzzle has been solved.
func (s *Session) State() State {
	return s.state
}

// Moves returns the number of rotations made on the current puzzle.
func (s *Session) Moves() int {
	return s.moves
}

// Spins returns a copy of the net clockwise quarter turns the player applied to every cell,
// each in [0, 4).
func (s *Session) Spins() [][]int {
	out := make([][]int, len(s.spins))
	for y, row := range s.spins {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Elapsed returns the play time of the current puzzle, stopping when it is solved.
func (s *Session) Elapsed() time.Duration {
	if s.state == Solved {
		return s.solvedAt.Sub(s.startedAt)
	}
	return s.now().Sub(s.startedAt)
}

// CheckDimensions validates a requested board size against inclusive bounds.
func CheckDimensions(width, height, minDim, maxDim int) error {
	if min(width, height) < minDim || max(width, height) > maxDim {
		return ErrDimensionOutOfRange
	}
	return nil
}
