package main

import (
	"github.com/spf13/cobra"

	"github.com/Treylong00/DND-Companion/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the character tools over MCP stdio",
	Long:  `Run a Model Context Protocol server on stdin and stdout exposing import, lookup and spell slot tools.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), cfg, sourceOverrides{})
		if err != nil {
			return err
		}
		defer a.Close()

		srv, err := mcp.NewServer(&mcp.ServerConfig{
			Service: a.service,
			Name:    "dnd-companion",
			Version: version,
		})
		if err != nil {
			return err
		}
		return srv.Run(cmd.Context())
	},
}
