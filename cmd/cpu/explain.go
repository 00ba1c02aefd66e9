package cpu

import (
	"fmt"
	"io"
	"os"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/sim8086/pkg/utils"
	"github.com/spf13/cobra"
)

var ExplainCmd = &cobra.Command{
	Use:   "explain <hex-byte> <hex-byte>",
	Short: "Show how a mov instruction is encoded",
	Long: `Decodes a single two byte instruction and draws the layout of its
encoding fields, with the value of every field and the resolved operands.

Examples:
  sim8086 explain 89 d8
  sim8086 explain 0x8b 0xd8
  sim8086 explain 89d8`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		program, err := parseHexBytes(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := explain(os.Stdout, program); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", colorError.Sprint("Error:"), err)
			os.Exit(2)
		}
	},
}

var ErrWrongInstructionLength = fmt.Errorf("an instruction takes exactly %v bytes", instructions.InstructionBytes)

// Writes the field layout of the instruction encoded in program
func explain(w io.Writer, program []byte) error {
	if len(program) != instructions.InstructionBytes {
		return utils.MakeError(ErrWrongInstructionLength, "got %v", len(program))
	}

	raw, err := instructions.DecodeRaw(0, program[0], program[1])
	if err != nil {
		return err
	}

	layout, err := raw.PrettyPrint(2)
	if err != nil {
		return err
	}

	instr := instructions.Assemble(raw)

	fmt.Fprintf(w, "%v %v\n\n", colorHex.Sprintf("% x", program), utils.HighlightAsm(instr.String()))
	fmt.Fprintln(w, layout)
	fmt.Fprintf(w, "  destination: %v\n", instr.Destination)
	fmt.Fprintf(w, "  source:      %v\n", instr.Source)

	return nil
}
