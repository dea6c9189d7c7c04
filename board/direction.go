package board

import "math/bits"

// Direction is one of the four cardinal sides of a cell.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

var directionNames = [4]string{"North", "East", "South", "West"}

// Ordinal returns the index of the direction, 0 for North through 3 for West.
func (d Direction) Ordinal() int {
	return int(d & 3)
}

// Opposite returns the direction facing d across a shared edge.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// RotateBy returns the direction steps quarter turns clockwise from d.
// Negative steps turn counter-clockwise.
func (d Direction) RotateBy(steps int) Direction {
	return Direction((int(d&3) + normalizeSteps(steps)) & 3)
}

// Offset returns the unit delta of the direction. North points towards y-1.
func (d Direction) Offset() (dx, dy int) {
	switch d & 3 {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	return directionNames[d&3]
}

// Rotation is the sense of a single quarter turn.
type Rotation int8

const (
	Clockwise        Rotation = 1
	CounterClockwise Rotation = -1
)

// Steps returns the rotation as a signed number of clockwise quarter turns.
func (r Rotation) Steps() int {
	if r < 0 {
		return -1
	}
	return 1
}

// ConnectorSet is a 4-bit set of directions. Bit i holds the direction with ordinal i,
// so North=1, East=2, South=4 and West=8.
type ConnectorSet uint8

const (
	// Empty is the set with no connectors.
	Empty ConnectorSet = 0
	// All is the set with a connector on every side.
	All ConnectorSet = 0b1111
)

// Of returns the set holding only dir.
func Of(dir Direction) ConnectorSet {
	return ConnectorSet(1) << dir.Ordinal()
}

// Union returns the set of directions present in s or o.
func (s ConnectorSet) Union(o ConnectorSet) ConnectorSet {
	return s | o
}

// With returns s with dir added.
func (s ConnectorSet) With(dir Direction) ConnectorSet {
	return s | Of(dir)
}

// Has reports whether dir is a member of s.
func (s ConnectorSet) Has(dir Direction) bool {
	return s&Of(dir) != 0
}

// Rotate turns every member of s by steps quarter turns clockwise.
// Negative steps turn counter-clockwise; steps is taken mod 4.
func (s ConnectorSet) Rotate(steps int) ConnectorSet {
	k := normalizeSteps(steps)
	m := s & All
	return ((m << k) | (m >> (4 - k))) & All
}

// Count returns the number of connectors in s.
func (s ConnectorSet) Count() int {
	return bits.OnesCount8(uint8(s & All))
}

// Members returns the directions in s in clockwise order starting at North.
func (s ConnectorSet) Members() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Valid reports whether s only uses the four direction bits.
func (s ConnectorSet) Valid() bool {
	return s&^All == 0
}

func normalizeSteps(steps int) int {
	return ((steps % 4) + 4) % 4
}

// Coord is a 0-indexed board position. X grows East, Y grows South.
type Coord struct {
	X int
	Y int
}

// Step returns the neighbouring coordinate in direction dir. The result may lie off the board.
func (c Coord) Step(dir Direction) Coord {
	dx, dy := dir.Offset()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
