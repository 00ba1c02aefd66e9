package tools

import (
	"github.com/spf13/cobra"
)

// ToolsCmd groups the commands that are not part of the decoding workflow
var ToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "sim8086 miscellaneous tools",
}
