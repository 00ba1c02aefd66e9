package instructions

import (
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Identifies a bit field of an instruction encoding
type Field uint

const (
	Field_OpCode Field = iota
	Field_Direction
	Field_Width
	Field_Mode
	Field_Reg
	Field_Rm

	TOTAL_FIELDS
)

// Number of bytes an instruction is encoded in
const InstructionBytes = 2

// Contains information about an instruction bit field
type FieldDescriptor struct {
	Field Field
	// Short name, as found in the 8086 manual
	Name string
	// Index of the instruction byte the field lives in
	Byte int
	// First bit of the field within its byte, most significant bit first
	Begin int
	// Bit past the last bit of the field within its byte, most significant bit first
	End int
	// Field description (for documentation and debugging)
	Description string
}

// Returns the number of bits used to encode the field
func (d *FieldDescriptor) EncodingBits() int {
	return d.End - d.Begin
}

// Returns the first bit of the field within the whole instruction, least significant bit first
// (the first instruction byte takes the most significant bits)
func (d *FieldDescriptor) EncodingPosition() int {
	byteOffset := utils.Bits(InstructionBytes - 1 - d.Byte)
	return byteOffset + utils.BitsPerByte - d.End
}

// Extracts the field from the bits of its byte
func (d *FieldDescriptor) Extract(bits [utils.BitsPerByte]bool) uint8 {
	return utils.BitField(bits, d.Begin, d.End)
}

func (d *FieldDescriptor) String() string {
	return d.Name
}

var fields = [TOTAL_FIELDS]*FieldDescriptor{
	Field_OpCode: {
		Field:       Field_OpCode,
		Name:        "opcode",
		Byte:        0,
		Begin:       0,
		End:         6,
		Description: "Instruction opcode",
	},
	Field_Direction: {
		Field:       Field_Direction,
		Name:        "D",
		Byte:        0,
		Begin:       6,
		End:         7,
		Description: "Direction. If set REG is the destination operand, otherwise REG is the source operand",
	},
	Field_Width: {
		Field:       Field_Width,
		Name:        "W",
		Byte:        0,
		Begin:       7,
		End:         8,
		Description: "Width. If set operands are 16 bit registers, otherwise 8 bit registers",
	},
	Field_Mode: {
		Field:       Field_Mode,
		Name:        "MOD",
		Byte:        1,
		Begin:       0,
		End:         2,
		Description: "Addressing mode. Decoded but operands are always resolved as registers",
	},
	Field_Reg: {
		Field:       Field_Reg,
		Name:        "REG",
		Byte:        1,
		Begin:       2,
		End:         5,
		Description: "Register operand",
	},
	Field_Rm: {
		Field:       Field_Rm,
		Name:        "R/M",
		Byte:        1,
		Begin:       5,
		End:         8,
		Description: "Register/memory operand. Always a register in register to register moves",
	},
}

// Returns the descriptor of an instruction field
func FieldOf(field Field) *FieldDescriptor {
	return fields[field]
}

// Returns the descriptors of all instruction fields, in encoding order
func AllFields() []*FieldDescriptor {
	return fields[:]
}
