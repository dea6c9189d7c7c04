package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beka-birhanu/loopgrid/board"
	"github.com/beka-birhanu/loopgrid/config"
	"github.com/beka-birhanu/loopgrid/game"
	"github.com/beka-birhanu/loopgrid/service/i"
)

const help = "h/j/k/l move  u/i rotate left/right  n new puzzle  c change size  e toggle errors  ? help  q quit"

// Shell reads key commands line by line and drives a game session. Several keys may be typed on
// one line; they are applied in order.
type Shell struct {
	session *game.Session
	in      *bufio.Scanner
	out     io.Writer
	palette palette
	seeds   func() uint64
	logger  i.Logger
}

// NewShell creates a shell playing s.
func NewShell(s *game.Session, in io.Reader, out io.Writer, color bool, seeds func() uint64, logger i.Logger) *Shell {
	return &Shell{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
		palette: palette{enabled: color},
		seeds:   seeds,
		logger:  logger,
	}
}

// Run plays until the input ends or the player quits.
func (sh *Shell) Run() error {
	fmt.Fprintln(sh.out, help)
	renderSession(sh.out, sh.session, sh.palette)

	for sh.in.Scan() {
		quit, redraw := sh.apply(sh.in.Text())
		if quit {
			return nil
		}
		if redraw {
			renderSession(sh.out, sh.session, sh.palette)
		}
	}
	return sh.in.Err()
}

// apply runs every key of a line and reports whether the player quit and whether the board
// needs to be drawn again.
func (sh *Shell) apply(line string) (quit, redraw bool) {
	for n, key := range line {
		switch key {
		case 'q':
			return true, false
		case 'h':
			sh.session.MoveFocus(board.West)
		case 'l':
			sh.session.MoveFocus(board.East)
		case 'k':
			sh.session.MoveFocus(board.North)
		case 'j':
			sh.session.MoveFocus(board.South)
		case 'u':
			sh.session.Rotate(board.CounterClockwise)
		case 'i':
			sh.session.Rotate(board.Clockwise)
		case 'e':
			sh.session.ToggleHighlight()
		case 'n':
			if err := sh.session.NewPuzzle(sh.seeds()); err != nil {
				sh.logger.Error(fmt.Sprintf("New puzzle: %v", err))
			}
		case 'c':
			// The rest of the line holds the new size, if it was typed inline.
			return false, sh.configure(line[n+1:]) || redraw
		case '?':
			fmt.Fprintln(sh.out, help)
		case ' ', '\t':
			continue
		default:
			sh.logger.Warning(fmt.Sprintf("Unknown key %q", key))
			continue
		}
		redraw = true
	}
	return false, redraw
}

// configure starts a fresh puzzle of a new size. The size is read from rest, or from the next
// input line when rest is blank. It reports whether the board changed.
func (sh *Shell) configure(rest string) bool {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		fmt.Fprintf(sh.out, "new size as \"width height\" (%d-%d): ", config.DefaultMinDimension, config.DefaultMaxDimension)
		if !sh.in.Scan() {
			return false
		}
		fields = strings.Fields(sh.in.Text())
	}
	if len(fields) != 2 {
		sh.logger.Warning(fmt.Sprintf("Expected width and height, got %q", strings.Join(fields, " ")))
		return false
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil {
		sh.logger.Warning(fmt.Sprintf("Bad width %q", fields[0]))
		return false
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		sh.logger.Warning(fmt.Sprintf("Bad height %q", fields[1]))
		return false
	}
	if err := game.CheckDimensions(width, height, config.DefaultMinDimension, config.DefaultMaxDimension); err != nil {
		sh.logger.Warning(fmt.Sprintf("Size %dx%d: %v", width, height, err))
		return false
	}

	if err := sh.session.Resize(width, height, sh.seeds()); err != nil {
		sh.logger.Error(fmt.Sprintf("Resize: %v", err))
		return false
	}
	return true
}
