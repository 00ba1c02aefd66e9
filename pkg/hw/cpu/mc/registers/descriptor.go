package registers

import (
	"fmt"
	"strings"
)

var registerDescriptions = [TOTAL_REGISTERS]string{
	AL: "Accumulator, low byte",
	CL: "Count register, low byte",
	DL: "Data register, low byte",
	BL: "Base register, low byte",
	AH: "Accumulator, high byte",
	CH: "Count register, high byte",
	DH: "Data register, high byte",
	BH: "Base register, high byte",
	AX: "Accumulator",
	CX: "Count register",
	DX: "Data register",
	BX: "Base register",
	SP: "Stack pointer",
	BP: "Base pointer",
	SI: "Source index",
	DI: "Destination index",
}

// Returns a short description of the register (for documentation/debugging)
func (r Register) Description() string {
	return registerDescriptions[r]
}

// Dumps the register lookup table as one multiline string
func Documentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%-6v %-30v %v\n", "code", Width_Byte, Width_Word))

	for code := uint8(0); code < RegistersPerWidth; code++ {
		byteRegister := Resolve(code, Width_Byte)
		wordRegister := Resolve(code, Width_Word)

		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("%03b    %-30v %v\n",
			code,
			fmt.Sprintf("%v (%v)", byteRegister, byteRegister.Description()),
			fmt.Sprintf("%v (%v)", wordRegister, wordRegister.Description()),
		))
	}

	return builder.String()
}
