// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the UniProt dictionary",
	Long: `Info prints the dictionary descriptor. With --id or --dict-id it prints
nothing unless the filter includes the UniProt dictionary id.`,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	ids, _ := cmd.Flags().GetStringSlice("id")
	dictIDs, _ := cmd.Flags().GetStringSlice("dict-id")
	res := s.dict.GetDictInfos(types.Options{
		Filter: types.Filter{ID: ids, DictID: dictIDs},
	})

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	return formatInfos(res, format, cmd.OutOrStdout())
}

func formatInfos(res types.DictInfoResult, format types.OutputFormat, w io.Writer) error {
	switch format {
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(res.Items) == 0 {
		fmt.Fprintln(w, "No dictionaries.")
		return nil
	}
	fmt.Fprintf(w, "%-26s  %-8s  %s\n", "ID", "Abbrev", "Name")
	for _, d := range res.Items {
		fmt.Fprintf(w, "%-26s  %-8s  %s\n", d.ID, d.Abbrev, d.Name)
	}
	return nil
}

func init() {
	infoCmd.Flags().StringSlice("id", nil, "dictionary ids to describe")
	infoCmd.Flags().StringSlice("dict-id", nil, "dictionary ids to accept")
	infoCmd.Flags().String("format", string(types.OutputTable), "output format: table, json, yaml")

	rootCmd.AddCommand(infoCmd)
}
