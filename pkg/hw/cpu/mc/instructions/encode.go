package instructions

import (
	"errors"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/sim8086/pkg/utils"
)

var ErrWidthMismatch = errors.New("operand width mismatch")

// Returns the register to register encoding of an instruction.
//
// Two encodings exist for every register move. This one always sets the D bit and
// stores the destination in REG (opcodes 0x8a and 0x8b).
func Encode(op OpCode, destination registers.Register, source registers.Register) (RawInstruction, error) {
	if destination.Width() != source.Width() {
		return RawInstruction{}, utils.MakeError(ErrWidthMismatch, "%v is a %v register but %v is a %v register", destination, destination.Width(), source, source.Width())
	}

	return RawInstruction{
		FirstByte: FirstByte{
			OpCode:    op,
			Direction: Direction_RegIsDestination,
			Width:     destination.Width(),
		},
		SecondByte: SecondByte{
			Mode: Mode_Register,
			Reg:  destination.Code(),
			Rm:   source.Code(),
		},
	}, nil
}
