package mc

import (
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Contains implementation information about the machine code
type MachineCodeDescriptor struct {
	// Information about instruction opcodes
	OpCodes *instructions.OpCodesDescriptor
}

// Dumps all the MC description as one big multiline string
func (d *MachineCodeDescriptor) Documentation(leftpad int) (string, error) {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	encoding, err := instructions.Documentation(leftpad)
	if err != nil {
		return "", err
	}

	builder.WriteString(leftpad_str)
	builder.WriteString("supported mnemonics: ")
	builder.WriteString(utils.FormatSlice(utils.Map(d.OpCodes.AllOpCodes(), func(op *instructions.OpCodeDescriptor) string { return op.Mnemonic }), ", "))
	builder.WriteString("\n")
	builder.WriteString(encoding)
	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Registers:\n\n")
	builder.WriteString(registers.Documentation(leftpad + 2))

	return builder.String(), nil
}

// Like Documentation(), but with zero leftpad
func (d *MachineCodeDescriptor) DocString() (string, error) {
	return d.Documentation(0)
}

func makeMachineCodeDescriptor() MachineCodeDescriptor {
	return MachineCodeDescriptor{
		OpCodes: &instructions.Opcodes,
	}
}

// Contains implementation information about the machine code
var Descriptor MachineCodeDescriptor = makeMachineCodeDescriptor()
