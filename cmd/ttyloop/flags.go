package main

import (
	"errors"
	"flag"
	"strconv"

	"github.com/beka-birhanu/loopgrid/config"
	"github.com/beka-birhanu/loopgrid/game"
)

// Config represents the command-line parameters of the terminal game.
type Config struct {
	Width    int
	Height   int
	Seed     *uint64 // nil draws a random seed
	Solution bool
	NoColor  bool
}

// NewConfig returns a Config populated with the default board size and no fixed seed.
func NewConfig() *Config {
	return &Config{Width: 8, Height: 8}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.Func("seed", "puzzle seed to replay; random when omitted", func(v string) error {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = &seed
		return nil
	})
	fs.BoolVar(&c.Solution, "solution", c.Solution, "print the solved board and exit")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable ANSI colours")
}

// Validate checks the board size against the playable range.
func (c *Config) Validate() error {
	err := game.CheckDimensions(c.Width, c.Height, config.DefaultMinDimension, config.DefaultMaxDimension)
	if errors.Is(err, game.ErrDimensionOutOfRange) {
		return errors.New("width and height must be between 5 and 20")
	}
	return err
}
