package instructions

import (
	"errors"
)

// Addressing mode selected by the MOD field of the second instruction byte.
//
// Only register to register moves are decoded, the mode is carried along with the
// decoded instruction but operands are always resolved as registers.
type Mode uint8

const (
	// Memory operand, no displacement (except direct addressing)
	Mode_Memory Mode = iota
	// Memory operand with 8 bit displacement
	Mode_MemoryDisplacement8
	// Memory operand with 16 bit displacement
	Mode_MemoryDisplacement16
	// Register to register
	Mode_Register

	// Number of addressing modes
	TOTAL_MODES
)

func (m Mode) String() string {
	switch m {
	case Mode_Memory:
		return "memory"
	case Mode_MemoryDisplacement8:
		return "memory + d8"
	case Mode_MemoryDisplacement16:
		return "memory + d16"
	case Mode_Register:
		return "register"
	}

	panic("unreachable")
}

// Returns true if the mode addresses registers only
func (m Mode) IsRegister() bool {
	return m == Mode_Register
}

var ErrInvalidMode = errors.New("invalid addressing mode")

func (m Mode) validate() error {
	if m < TOTAL_MODES {
		return nil
	}

	return ErrInvalidMode
}
