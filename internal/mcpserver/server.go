// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the dictionary operations as Model Context
// Protocol tools so a term-lookup client can query UniProt over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// Dictionary is the set of operations served as tools.
// *uniprot.Dictionary implements it.
type Dictionary interface {
	GetDictInfos(opts types.Options) types.DictInfoResult
	GetEntries(ctx context.Context, opts types.Options) (types.Result, error)
	GetEntryMatchesForString(ctx context.Context, str string, opts types.Options) (types.Result, error)
}

// Server is the MCP server for the dictionary.
type Server struct {
	mcp  *server.MCPServer
	dict Dictionary
	log  zerolog.Logger
}

// New creates a server with all dictionary tools registered.
func New(dict Dictionary, version string, log zerolog.Logger) *Server {
	s := &Server{
		dict: dict,
		log:  log.With().Str("component", "mcp").Logger(),
	}
	s.mcp = server.NewMCPServer(
		"dictionary-uniprot",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// ServeStdio serves the tools on stdin/stdout until the input closes.
func (s *Server) ServeStdio() error {
	s.log.Info().Msg("starting stdio server")
	return server.ServeStdio(s.mcp)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}
