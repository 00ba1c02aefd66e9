package instructions

import (
	"fmt"
	"strings"
)

// Dumps the opcodes and the instruction encoding as one big multiline string
func Documentation(leftpad int) (string, error) {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total supported opcodes: %v\n", Opcodes.TotalOpCodes()))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("instruction encoding length (bytes): %v\n", InstructionBytes))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("opcode encoding length (bits): %v\n\n", Opcodes.OpCodeBits()))

	builder.WriteString(leftpad_str)
	builder.WriteString("Opcodes:\n\n")

	for _, opCode := range Opcodes.AllOpCodes() {
		builder.WriteString(fmt.Sprintf("%v - %v: %v\n", leftpad_str, opCode, opCode.Description))
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Memory layout:\n\n")

	frame, err := layout(leftpad+2, func(d *FieldDescriptor) string { return d.Name })
	if err != nil {
		return "", err
	}

	builder.WriteString(frame)
	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Fields:\n\n")

	for _, field := range AllFields() {
		builder.WriteString(fmt.Sprintf("%v - %v (%v bits): %v\n", leftpad_str, field, field.EncodingBits(), field.Description))
	}

	return builder.String(), nil
}
