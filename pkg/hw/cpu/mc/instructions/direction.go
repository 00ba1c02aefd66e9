package instructions

import (
	"errors"
)

// Selects which operand the REG field denotes
type Direction uint

const (
	// REG is the source operand, R/M the destination (D bit clear)
	Direction_RegIsSource Direction = iota
	// REG is the destination operand, R/M the source (D bit set)
	Direction_RegIsDestination
)

func (d Direction) String() string {
	switch d {
	case Direction_RegIsSource:
		return "reg is source"
	case Direction_RegIsDestination:
		return "reg is destination"
	}

	panic("unreachable")
}

// Returns the direction selected by the D bit of an instruction
func DirectionFromBit(d bool) Direction {
	if d {
		return Direction_RegIsDestination
	}

	return Direction_RegIsSource
}

// Returns the value of the D bit selecting this direction
func (d Direction) Bit() bool {
	return d == Direction_RegIsDestination
}

var ErrInvalidDirection = errors.New("invalid direction")

func (d Direction) validate() error {
	switch d {
	case Direction_RegIsSource, Direction_RegIsDestination:
		return nil
	}

	return ErrInvalidDirection
}
