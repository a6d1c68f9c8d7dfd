package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned (or reported) when a caller addresses a cell
// outside the grid or passes an unrecognized direction code.
var ErrInvalidInput = errors.New("invalid input")

// Direction identifies one side of a cell.
type Direction int

// Cardinal directions, usable as indices into Cell.Walls.
const (
	North Direction = iota
	East
	South
	West
)

// directionCodes is the fixed code table accepted by ParseDirection.
var directionCodes = map[byte]Direction{
	'n': North,
	'e': East,
	's': South,
	'w': West,
}

// ParseDirection decodes a single-character direction code.
func ParseDirection(code byte) (Direction, error) {
	d, ok := directionCodes[code]
	if !ok {
		return 0, fmt.Errorf("the character %q is not mapped to a valid direction: %w", code, ErrInvalidInput)
	}
	return d, nil
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Code returns the single-character code for d.
func (d Direction) Code() byte {
	switch d {
	case North:
		return 'n'
	case East:
		return 'e'
	case South:
		return 's'
	case West:
		return 'w'
	default:
		return '?'
	}
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset returns the grid step taken when moving one cell in direction d.
// North is +y.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Directions lists the four directions in index order.
var Directions = [4]Direction{North, East, South, West}

// Cell is a single maze square. The wall flags are independent of the
// neighbouring cells: keeping a shared wall consistent is up to the caller.
type Cell struct {
	Walls [4]bool
}
