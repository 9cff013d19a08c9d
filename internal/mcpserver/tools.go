// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcpserver

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("dict_infos",
		mcp.WithDescription("Describe the UniProt dictionary"),
		withFilterArgs(),
		withFilterDictArgs(),
	), s.handleDictInfos)

	s.mcp.AddTool(mcp.NewTool("get_entries",
		mcp.WithDescription("Look up UniProt entries by URI or accession, or list one page of all entries when no id is given"),
		withFilterArgs(),
		withFilterDictArgs(),
		mcp.WithString("sort",
			mcp.Description("Sort key for id lookups"),
			mcp.Enum(types.SortID, types.SortDictID, types.SortStr),
		),
		withPagingArgs(),
		withZArgs(),
	), s.handleGetEntries)

	s.mcp.AddTool(mcp.NewTool("match_string",
		mcp.WithDescription("Search UniProt for entries whose names match a string"),
		mcp.WithString("str",
			mcp.Description("Text to search for"),
			mcp.Required(),
		),
		withFilterDictArgs(),
		withPagingArgs(),
		withZArgs(),
	), s.handleMatchString)
}

func withFilterArgs() mcp.ToolOption {
	return mcp.WithArray("id",
		mcp.Description("Entry URIs or bare accessions"),
		mcp.WithStringItems(),
	)
}

func withFilterDictArgs() mcp.ToolOption {
	return mcp.WithArray("dictID",
		mcp.Description("Dictionary ids the caller accepts; empty accepts all"),
		mcp.WithStringItems(),
	)
}

func withZArgs() mcp.ToolOption {
	return mcp.WithArray("z",
		mcp.Description("Auxiliary fields to keep (genes, species, status, entry, score); omit to keep all, empty to drop"),
		mcp.WithStringItems(),
	)
}

func withPagingArgs() mcp.ToolOption {
	return func(t *mcp.Tool) {
		mcp.WithNumber("page", mcp.Description("1-based page number"))(t)
		mcp.WithNumber("perPage", mcp.Description("Items per page"))(t)
	}
}

// optionsFromRequest reads the query options from the tool arguments.
// Invalid values are left for the dictionary to treat as unset.
func optionsFromRequest(req mcp.CallToolRequest) types.Options {
	opts := types.Options{
		Filter: types.Filter{
			ID:     req.GetStringSlice("id", nil),
			DictID: req.GetStringSlice("dictID", nil),
		},
		Sort:    req.GetString("sort", ""),
		Page:    positiveInt(req.GetArguments()["page"]),
		PerPage: positiveInt(req.GetArguments()["perPage"]),
	}
	if _, ok := req.GetArguments()["z"]; ok {
		opts.Z = req.GetStringSlice("z", []string{})
		if opts.Z == nil {
			opts.Z = []string{}
		}
	}
	return opts
}

// positiveInt returns v when it is a whole number of at least 1, and 0
// for anything else. JSON numbers arrive as float64.
func positiveInt(v any) int {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	default:
		return 0
	}
	if n < 1 || n != math.Trunc(n) || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}

func (s *Server) handleDictInfos(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.dict.GetDictInfos(optionsFromRequest(req)))
}

func (s *Server) handleGetEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.dict.GetEntries(ctx, optionsFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}
	return jsonResult(res)
}

func (s *Server) handleMatchString(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	str := req.GetString("str", "")
	if strings.TrimSpace(str) == "" {
		return nil, fmt.Errorf("str is required")
	}
	res, err := s.dict.GetEntryMatchesForString(ctx, str, optionsFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("match string: %w", err)
	}
	return jsonResult(res)
}
