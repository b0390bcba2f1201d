// ABOUTME: MCP server command for datepage CLI
// ABOUTME: Starts stdio-based MCP server for AI agent integration

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agents",
	Long: `Start the Model Context Protocol (MCP) server on stdio.

This lets AI agents do calendar arithmetic (add_date, sub_date, start_of,
end_of) and page through date ranges with stateful pager sessions.
All dates exchanged with the server are UTC.

The server communicates via JSON-RPC on stdin/stdout; logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cfg.GetDirection()
		if err != nil {
			return err
		}

		server := mcp.NewServer(mcp.Options{
			Version:    Version,
			Unit:       cfg.GetUnit(),
			Multiplier: cfg.GetMultiplier(),
			Direction:  dir,
			WeekStart:  weekStart,
			Clock:      nowFunc,
			Logger:     appLog,
		})

		appLog.Info("starting MCP server", "version", Version)
		if err := server.ServeStdio(); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
