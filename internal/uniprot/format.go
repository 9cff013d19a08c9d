// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// FormatTable writes records as a human-readable table to w.
func FormatTable(res types.Result, w io.Writer) {
	if len(res.Items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-12s  %-40s  %-4s  %-20s  %s\n",
		"#", "Accession", "Term", "Type", "Genes", "Species")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, e := range res.Items {
		var genes, species string
		if e.Z != nil {
			genes = strings.Join(e.Z.Genes, " ")
			species = e.Z.Species
		}
		fmt.Fprintf(w, "%-4d  %-12s  %-40s  %-4s  %-20s  %s\n",
			i+1,
			truncate(lastPathSegment(e.ID), 12),
			truncate(e.MainTerm(), 40),
			string(e.Type),
			truncate(genes, 20),
			truncate(species, 30))
	}

	fmt.Fprintf(w, "\n%d results\n", len(res.Items))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(res types.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// FormatYAML writes records as YAML to w.
func FormatYAML(res types.Result, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// Format writes res to w in the requested format. Unknown formats fall
// back to the table.
func Format(res types.Result, format types.OutputFormat, w io.Writer) error {
	switch format {
	case types.OutputJSON:
		return FormatJSON(res, w)
	case types.OutputYAML:
		return FormatYAML(res, w)
	}
	FormatTable(res, w)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
