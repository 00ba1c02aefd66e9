package cpu

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/registers"
	"github.com/spf13/cobra"
)

var encodeBinary bool

var EncodeCmd = &cobra.Command{
	Use:   "encode <destination> <source>",
	Short: "Encode a register to register mov instruction",
	Long: `Prints the two bytes encoding "mov <destination>, <source>".

Both registers must have the same width. The encoding always uses the
reg field as destination (D=1).

Examples:
  sim8086 encode bx ax      # 8b d8
  sim8086 encode -b cl al`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		bytes, err := encode(args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", colorError.Sprint("Error:"), err)
			os.Exit(1)
		}

		if encodeBinary {
			fmt.Printf("%08b %08b\n", bytes[0], bytes[1])
		} else {
			fmt.Printf("% x\n", bytes[:])
		}
	},
}

func init() {
	EncodeCmd.Flags().BoolVarP(&encodeBinary, "binary", "b", false, "Print the bytes in binary")
}

// Returns the encoding of a mov between the two named registers
func encode(destination string, source string) ([instructions.InstructionBytes]byte, error) {
	dst, err := registers.Parse(strings.TrimSuffix(strings.TrimSpace(destination), ","))
	if err != nil {
		return [instructions.InstructionBytes]byte{}, err
	}

	src, err := registers.Parse(source)
	if err != nil {
		return [instructions.InstructionBytes]byte{}, err
	}

	raw, err := instructions.Encode(instructions.OpCode_MOV, dst, src)
	if err != nil {
		return [instructions.InstructionBytes]byte{}, err
	}

	return raw.Bytes(), nil
}
