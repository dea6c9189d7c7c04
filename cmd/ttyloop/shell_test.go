package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/beka-birhanu/loopgrid/board"
	"github.com/beka-birhanu/loopgrid/game"
	"github.com/beka-birhanu/loopgrid/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{ warnings int }

func (l *nopLogger) Info(string)    {}
func (l *nopLogger) Warning(string) { l.warnings++ }
func (l *nopLogger) Error(string)   {}

func newShell(t *testing.T, input string) (*Shell, *game.Session, *bytes.Buffer, *nopLogger) {
	t.Helper()
	s, err := game.NewSession(5, 5, 31)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	log := &nopLogger{}
	next := uint64(100)
	seeds := func() uint64 {
		next++
		return next
	}
	return NewShell(s, strings.NewReader(input), out, false, seeds, log), s, out, log
}

func TestShellMovesAndRotates(t *testing.T) {
	sh, s, _, _ := newShell(t, "")
	before := s.Board().Clone()

	quit, redraw := sh.apply("ljj")
	assert.False(t, quit)
	assert.True(t, redraw)
	assert.Equal(t, board.Coord{X: 1, Y: 2}, s.Focus())

	sh.apply("hk")
	assert.Equal(t, board.Coord{X: 0, Y: 1}, s.Focus())

	sh.apply("iu")
	if s.State() == game.Unsolved {
		assert.Equal(t, 2, s.Moves())
		assert.Equal(t, before.Masks(), s.Board().Masks(), "a turn and its inverse cancel out")
	}
}

func TestShellNewPuzzleAndHighlight(t *testing.T) {
	sh, s, _, _ := newShell(t, "")

	sh.apply("e")
	assert.Equal(t, s.Board().InvalidCells(), s.Highlighted())

	sh.apply("n")
	assert.Equal(t, uint64(101), s.Seed())
	assert.Equal(t, 0, s.Moves())
}

func TestShellUnknownKeys(t *testing.T) {
	sh, _, _, log := newShell(t, "")
	quit, redraw := sh.apply("x  z")
	assert.False(t, quit)
	assert.False(t, redraw)
	assert.Equal(t, 2, log.warnings)
}

func TestShellRunStopsOnQuit(t *testing.T) {
	sh, s, out, _ := newShell(t, "l\nq\nl\n")
	require.NoError(t, sh.Run())
	assert.Equal(t, board.Coord{X: 1}, s.Focus(), "keys after q are not read")
	assert.Contains(t, out.String(), help)
	assert.Contains(t, out.String(), "[")
}

func TestShellSolvedBanner(t *testing.T) {
	s, err := game.NewSession(5, 5, 8)
	require.NoError(t, err)
	solution, err := generator.Solution(5, 5, 8)
	require.NoError(t, err)

	var keys strings.Builder
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			pos := board.Coord{X: x, Y: y}
			have, _ := s.Board().Cell(pos)
			want, _ := solution.Cell(pos)
			for k := 0; k < 4 && have != want; k++ {
				keys.WriteByte('i')
				have = have.Rotate(1)
			}
			if x < 4 {
				keys.WriteByte('l')
			}
		}
		keys.WriteString("j")
		keys.WriteString(strings.Repeat("h", 4))
	}

	out := &bytes.Buffer{}
	sh := NewShell(s, strings.NewReader(keys.String()+"\n"), out, true, generator.RandomSeed, &nopLogger{})
	require.NoError(t, sh.Run())

	if s.Moves() > 0 {
		assert.Equal(t, game.Solved, s.State())
		assert.Contains(t, out.String(), "Solved in")

		var solved bytes.Buffer
		renderSession(&solved, s, palette{enabled: true})
		assert.NotContains(t, solved.String(), bgLight)
		assert.NotContains(t, solved.String(), bgDark)
		assert.NotContains(t, solved.String(), bgFocus)
	}
}

func TestShellConfigure(t *testing.T) {
	t.Run("Size typed inline", func(t *testing.T) {
		sh, s, _, _ := newShell(t, "")
		sh.apply("l")
		quit, redraw := sh.apply("c 12 7")
		assert.False(t, quit)
		assert.True(t, redraw)
		assert.Equal(t, 12, s.Board().Width())
		assert.Equal(t, 7, s.Board().Height())
		assert.Equal(t, uint64(101), s.Seed())
		assert.Equal(t, board.Coord{}, s.Focus())
		assert.Equal(t, game.Unsolved, s.State())
	})

	t.Run("Size read from the next line", func(t *testing.T) {
		sh, s, out, _ := newShell(t, "c\n6 9\nq\n")
		require.NoError(t, sh.Run())
		assert.Equal(t, 6, s.Board().Width())
		assert.Equal(t, 9, s.Board().Height())
		assert.Contains(t, out.String(), "width height")
	})

	t.Run("Out of range size is refused", func(t *testing.T) {
		for _, size := range []string{"4 10", "10 21", "ten 10", "10"} {
			sh, s, _, log := newShell(t, "")
			assert.False(t, sh.configure(size), "size %q", size)
			assert.Equal(t, 5, s.Board().Width(), "size %q", size)
			assert.Equal(t, uint64(31), s.Seed(), "size %q", size)
			assert.Equal(t, 1, log.warnings, "size %q", size)
		}
	})

	t.Run("Input ends before the size", func(t *testing.T) {
		sh, s, _, _ := newShell(t, "")
		assert.False(t, sh.configure("  "))
		assert.Equal(t, 5, s.Board().Width())
	})
}

func TestRenderSolvedDropsBackground(t *testing.T) {
	s, err := game.NewSession(5, 5, 3)
	require.NoError(t, err)
	p := palette{enabled: true}

	var unsolved bytes.Buffer
	renderSession(&unsolved, s, p)
	assert.Contains(t, unsolved.String(), bgLight)
	assert.Contains(t, unsolved.String(), bgFocus)

	assert.Equal(t, "", p.cell(board.Coord{}, board.Coord{}, false, true))
	assert.Equal(t, bgDark, p.cell(board.Coord{X: 1}, board.Coord{}, false, false))
}

func TestConfigSeedFlag(t *testing.T) {
	parse := func(args ...string) *Config {
		cfg := NewConfig()
		fs := flag.NewFlagSet("ttyloop", flag.ContinueOnError)
		cfg.Bind(fs)
		require.NoError(t, fs.Parse(args))
		return cfg
	}

	assert.Nil(t, parse().Seed, "no seed means a random one")

	cfg := parse("-seed", "0")
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(0), *cfg.Seed)

	cfg = parse("-seed", "18446744073709551615", "-width", "12")
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(18446744073709551615), *cfg.Seed)
	assert.Equal(t, 12, cfg.Width)

	fs := flag.NewFlagSet("ttyloop", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	NewConfig().Bind(fs)
	assert.Error(t, fs.Parse([]string{"-seed", "-1"}))
}

func TestConfigValidate(t *testing.T) {
	cfg := NewConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Width = 4
	assert.Error(t, cfg.Validate())

	cfg.Width, cfg.Height = 20, 21
	assert.Error(t, cfg.Validate())
}
