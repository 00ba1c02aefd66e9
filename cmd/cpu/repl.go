package cpu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/sim8086/pkg/utils"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Decode and encode instructions interactively",
	Long: `Starts an interactive prompt.

Hex bytes are decoded into assembly and mov instructions are encoded
into hex bytes:

  (sim8086) 89 d8
  mov ax, bx
  (sim8086) mov cl, al
  8a c8

Type 'quit' or 'exit' to leave.`,
	Args: cobra.NoArgs,
	Run:  runRepl,
}

var errQuit = errors.New("quit")

const replHelp = `Commands:
  <hex bytes>         decode byte pairs, e.g. "89 d8" or "89d88bd8"
  mov <dst>, <src>    encode a register to register mov
  help, h             show this help
  quit, q, exit       leave the prompt`

var replCommands = []string{"mov", "help", "quit", "exit"}

// Evaluates one line of REPL input and returns the text to show
func evalLine(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}

	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case "quit", "q", "exit":
		return "", errQuit
	case "help", "h":
		return replHelp, nil
	}

	if _, err := instructions.Opcodes.ParseOpCode(fields[0]); err == nil {
		operands := strings.Split(strings.TrimSpace(line[len(fields[0]):]), ",")
		if len(operands) != 2 {
			return "", fmt.Errorf("expected 'mov <dst>, <src>', got '%v'", line)
		}

		bytes, err := encode(operands[0], operands[1])
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("% x", bytes[:]), nil
	}

	program, err := parseHexBytes(fields)
	if err != nil {
		return "", err
	}

	pairs, remainder := utils.Chunks(program, instructions.InstructionBytes)
	lines := make([]string, 0, len(pairs))

	for i, pair := range pairs {
		instr, err := instructions.Decode(i*instructions.InstructionBytes, pair[0], pair[1])
		if err != nil {
			return strings.Join(lines, "\n"), err
		}

		lines = append(lines, utils.HighlightAsm(strings.ToLower(instr.String())))
	}

	if len(remainder) > 0 {
		lines = append(lines, colorHiBlack.Sprintf("; ignored trailing byte 0x%02x", remainder[0]))
	}

	return strings.Join(lines, "\n"), nil
}

func replHistoryFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".sim8086_history"
	}
	return filepath.Join(homeDir, ".sim8086_history")
}

func runRepl(cmd *cobra.Command, args []string) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) []string {
		var completions []string
		for _, command := range replCommands {
			if strings.HasPrefix(command, strings.ToLower(input)) {
				completions = append(completions, command)
			}
		}
		return completions
	})

	historyFile := replHistoryFilePath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("Type 'help' for available commands.")

	for {
		input, err := line.Prompt("(sim8086) ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				break
			}
			fmt.Fprintf(os.Stderr, "%s %v\n", colorError.Sprint("Error reading input:"), err)
			break
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		output, err := evalLine(input)
		if output != "" {
			fmt.Println(output)
		}
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", colorError.Sprint("Error:"), err)
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
