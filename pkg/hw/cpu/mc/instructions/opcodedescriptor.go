package instructions

import (
	"fmt"

	"github.com/Manu343726/sim8086/pkg/utils"
)

// Contains implementation information of an instruction opcode
type OpCodeDescriptor struct {
	OpCode               OpCode
	BinaryRepresentation uint64
	Mnemonic             string
	Description          string
}

func (d *OpCodeDescriptor) String() string {
	return fmt.Sprintf("%v (binary: %v, hex: %v)", d.Mnemonic, utils.FormatUintBinary(d.BinaryRepresentation, d.EncodingBits()), utils.FormatUintHex(d.BinaryRepresentation, 2))
}

// Returns the number of bits used to encode an instruction opcode
func (d *OpCodeDescriptor) EncodingBits() int {
	return Opcodes.OpCodeBits()
}

// Returns the first bit within the first instruction byte used to encode the opcode
func (d *OpCodeDescriptor) EncodingPosition() int {
	return utils.BitsPerByte - d.EncodingBits()
}
