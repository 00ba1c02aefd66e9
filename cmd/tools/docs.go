package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc"
	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/sim8086/pkg/utils"
	"github.com/spf13/cobra"
)

var supportedModules = map[string]func() (string, error){
	"cpu.machine_code": func() (string, error) { return mc.Descriptor.DocString() },
	"cpu.instructions": func() (string, error) { return instructions.Documentation(0) },
	"cpu.registers":    func() (string, error) { return registers.Documentation(0), nil },
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show sim8086 documentation",
	Long: `Dumps the documentation of the specified sim8086 module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.Keys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: utils.Keys(supportedModules),
	Run: func(cmd *cobra.Command, args []string) {
		docs, err := supportedModules[args[0]]()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error generating documentation:", err)
			os.Exit(1)
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error creating file:", err)
				os.Exit(1)
			}
			defer file.Close()
			fmt.Fprintln(file, docs)
		} else {
			fmt.Println(docs)
		}
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
