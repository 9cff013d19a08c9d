// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/dictionary-uniprot/internal/mcpserver"
)

var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Serve the dictionary as MCP tools over stdin/stdout",
	Long: `Serve-mcp runs a Model Context Protocol server on stdin/stdout with the
tools dict_infos, get_entries and match_string. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		if err := mcpserver.New(s.dict, version, log).ServeStdio(); err != nil {
			return err
		}
		return s.close()
	},
}

func init() {
	rootCmd.AddCommand(serveMCPCmd)
}
