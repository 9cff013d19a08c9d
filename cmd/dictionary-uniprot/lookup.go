// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dictionary-uniprot/internal/termstore"
	"github.com/pdiddy/dictionary-uniprot/internal/uniprot"
	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <prefix>",
	Short: "Search a local term store by term prefix",
	Long: `Lookup searches a term store written with --store for entries having a
term that starts with the prefix, ignoring case. It never contacts UniProt.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("store")
	if path == "" {
		return fmt.Errorf("--store is required")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	store, err := termstore.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Lookup(cmd.Context(), args[0], limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []types.Entry{}
	}
	return uniprot.Format(types.Result{Items: entries}, format, cmd.OutOrStdout())
}

func init() {
	lookupCmd.Flags().String("store", "", "SQLite term store to search")
	lookupCmd.Flags().Int("limit", 20, "maximum number of entries")
	lookupCmd.Flags().String("format", string(types.OutputTable), "output format: table, json, yaml")

	rootCmd.AddCommand(lookupCmd)
}
