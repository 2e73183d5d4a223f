// Developer tools that poke at grammar files without generating code.
package tools

import (
	"github.com/spf13/cobra"
)

var ToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Grammar inspection tools",
}

func init() {
	ToolsCmd.AddCommand(dumpCmd)
}
