package robot

import (
	"fmt"
	"strconv"
)

// Facing is a cardinal direction, numbered clockwise from north.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

var facingNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

func ParseFacing(name string) (Facing, error) {
	for i, n := range facingNames {
		if n == name {
			return Facing(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}

func (f Facing) Valid() bool {
	return f >= North && f <= West
}

func (f Facing) String() string {
	if !f.Valid() {
		return "INVALID DIRECTION: " + strconv.Itoa(int(f))
	}
	return facingNames[f]
}

func (f Facing) Left() Facing {
	return (f + 3) % 4
}

func (f Facing) Right() Facing {
	return (f + 1) % 4
}

// Delta is the single step taken by MOVE.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Glyph is the board symbol for a robot facing f.
func (f Facing) Glyph() string {
	switch f {
	case North:
		return "^"
	case East:
		return ">"
	case South:
		return "v"
	case West:
		return "<"
	}
	return "?"
}
