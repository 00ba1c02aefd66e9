package instructions

import (
	"fmt"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/registers"
)

// Stores a fully decoded instruction
type Instruction struct {
	OpCode      OpCode
	Destination registers.Register
	Source      registers.Register

	// Fields the instruction was decoded from
	Raw RawInstruction
}

// Resolves the operands of a raw instruction and orders them as destination and source,
// as selected by the instruction direction
func Assemble(raw RawInstruction) *Instruction {
	reg := raw.RegOperand()
	rm := raw.RmOperand()

	destination, source := rm, reg
	if raw.Direction == Direction_RegIsDestination {
		destination, source = reg, rm
	}

	return &Instruction{
		OpCode:      raw.OpCode,
		Destination: destination,
		Source:      source,
		Raw:         raw,
	}
}

// Decodes the two encoding bytes of an instruction found at the given stream offset
func Decode(offset int, first byte, second byte) (*Instruction, error) {
	raw, err := DecodeRaw(offset, first, second)
	if err != nil {
		return nil, err
	}

	return Assemble(raw), nil
}

func (i *Instruction) String() string {
	return fmt.Sprintf("%v %v, %v", i.OpCode, i.Destination, i.Source)
}
