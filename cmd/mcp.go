package cmd

import (
	"github.com/spf13/cobra"
	"github.com/talentco/talentmatch/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the talentmatch MCP server",
	Long:  `Launch an MCP server that allows AI agents to run talent matches via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep setup quiet when running in MCP mode to avoid polluting
		// stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		source, cleanup, err := buildSource()
		if err != nil {
			return err
		}
		defer cleanup()
		return mcp.StartMCPServer(rootCtx, cfg, source, buildGenerator(rootCtx))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
