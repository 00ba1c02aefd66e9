package instructions

// Represents an instruction opcode
type OpCode uint

const (
	// Copy the value of one register into another
	OpCode_MOV OpCode = iota

	// Total opcodes implemented
	TOTAL_OPCODES
)

// Returns the mnemonic of the instruction opcode
func (op OpCode) String() string {
	return Opcodes.Mnemonic(op)
}
