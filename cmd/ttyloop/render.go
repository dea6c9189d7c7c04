package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beka-birhanu/loopgrid/board"
	"github.com/beka-birhanu/loopgrid/config"
	"github.com/beka-birhanu/loopgrid/game"
)

const (
	bgLight = "\033[48;5;254m\033[38;5;232m"
	bgDark  = "\033[48;5;250m\033[38;5;232m"
	bgFocus = "\033[48;5;153m\033[38;5;232m"
	fgError = "\033[38;5;160m"
)

// palette picks the escape sequences a cell is drawn with.
type palette struct {
	enabled bool
}

// cell returns the colours of the cell at pos. A solved board is drawn in the terminal's
// default colours.
func (p palette) cell(pos, focus board.Coord, broken, solved bool) string {
	if !p.enabled || solved {
		return ""
	}
	bg := bgLight
	if (pos.X+pos.Y)%2 == 1 {
		bg = bgDark
	}
	if pos == focus {
		bg = bgFocus
	}
	if broken {
		return bg + fgError
	}
	return bg
}

func (p palette) reset() string {
	if !p.enabled {
		return ""
	}
	return config.ColorReset
}

// renderSession draws the board in play with the focused cell and any highlighted cells marked.
// Without colours the focus is shown as brackets around the cell.
func renderSession(w io.Writer, s *game.Session, p palette) {
	b := s.Board()
	broken := make(map[board.Coord]bool)
	for _, c := range s.Highlighted() {
		broken[c] = true
	}

	focus := s.Focus()
	if s.State() == game.Solved {
		focus = board.Coord{X: -1, Y: -1}
	}

	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			pos := board.Coord{X: x, Y: y}
			c, _ := b.Cell(pos)
			glyph := c.Render()
			if !p.enabled {
				switch {
				case pos == focus:
					glyph = "[" + glyph + "]"
				case broken[pos]:
					glyph = "!" + glyph + "!"
				default:
					glyph = " " + glyph + " "
				}
			}
			sb.WriteString(p.cell(pos, focus, broken[pos], s.State() == game.Solved))
			sb.WriteString(glyph)
		}
		sb.WriteString(p.reset())
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())

	if s.State() == game.Solved {
		fmt.Fprintf(w, "Solved in %d moves (%s). Press n for a new puzzle or q to quit.\n", s.Moves(), s.Elapsed().Round(time.Millisecond))
		return
	}
	fmt.Fprintf(w, "seed %d  moves %d  focus (%d,%d)\n", s.Seed(), s.Moves(), s.Focus().X, s.Focus().Y)
}
