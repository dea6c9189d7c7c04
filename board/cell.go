package board

import "fmt"

// DisplayLen is the number of terminal columns a rendered cell occupies.
const DisplayLen = 3

// glyphs is indexed by the connector mask (N=1, E=2, S=4, W=8).
var glyphs = [16]string{
	0b0000: "   ",

	// One stub
	0b0001: " ╵ ",
	0b0010: " ╶─",
	0b0100: " ╷ ",
	0b1000: "─╴ ",

	// Two stubs, corners
	0b0011: " ╰─",
	0b0110: " ╭─",
	0b1100: "─╮ ",
	0b1001: "─╯ ",

	// Two stubs, straights
	0b0101: " │ ",
	0b1010: "───",

	// Three stubs
	0b0111: " ├─",
	0b1110: "─┬─",
	0b1101: "─┤ ",
	0b1011: "─┴─",

	// Four stubs
	0b1111: "─┼─",
}

// Cell is a single board position and the connectors it exposes.
// The zero value is a cell with no connectors.
type Cell struct {
	connectors ConnectorSet
}

// NewCell creates a cell exposing the given connectors. Any mask is accepted;
// validity is a property of the board, not of a cell.
func NewCell(connectors ConnectorSet) Cell {
	return Cell{connectors: connectors}
}

// Connectors returns the set of sides the cell exposes a stub on.
func (c Cell) Connectors() ConnectorSet {
	return c.connectors
}

// Exposes reports whether the cell has a stub towards dir.
func (c Cell) Exposes(dir Direction) bool {
	return c.connectors.Has(dir)
}

// Rotate returns the cell turned steps quarter turns clockwise.
// Negative steps turn counter-clockwise.
func (c Cell) Rotate(steps int) Cell {
	return Cell{connectors: c.connectors.Rotate(steps)}
}

// Rotated returns the cell turned a single quarter turn in the sense of rot.
func (c Cell) Rotated(rot Rotation) Cell {
	return c.Rotate(rot.Steps())
}

// FitsWith reports whether the edge between c and neighbor on side dir is consistent:
// c exposes a stub towards dir exactly when the neighbour exposes one back.
// A nil neighbor stands for the board boundary, which never exposes a stub.
func (c Cell) FitsWith(neighbor *Cell, dir Direction) bool {
	mine := c.connectors.Has(dir)
	theirs := neighbor != nil && neighbor.connectors.Has(dir.Opposite())
	return mine == theirs
}

// Render returns the 3-column box drawing glyph for the cell.
// It panics if the cell holds a mask outside the four direction bits.
func (c Cell) Render() string {
	if !c.connectors.Valid() {
		panic(fmt.Sprintf("board: unreachable connector mask %#b", uint8(c.connectors)))
	}
	return glyphs[c.connectors]
}

func (c Cell) String() string {
	return c.Render()
}
