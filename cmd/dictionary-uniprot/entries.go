// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/dictionary-uniprot/internal/metrics"
)

var entriesCmd = &cobra.Command{
	Use:   "entries [id...]",
	Short: "Look up UniProt entries by URI or accession",
	Long: `Entries looks up the given UniProt entries. Each id is a full entry URI
(https://www.uniprot.org/uniprot/P52413) or a bare accession (P52413).
Lookups run concurrently; the joined records are sorted with --sort and
paged with --page and --per-page.

Without ids, entries lists one page of all UniProt records in id order.`,
	RunE: runEntries,
}

func runEntries(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	opts := optionsFromFlags(cmd)
	opts.Filter.ID = args
	opts.Sort, _ = cmd.Flags().GetString("sort")

	res, err := s.dict.GetEntries(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if err := emitResult(cmd, cmd.OutOrStdout(), metrics.OpEntries, "", opts, res); err != nil {
		return err
	}
	return s.close()
}

func init() {
	entriesCmd.Flags().String("sort", "", "sort key for id lookups: id, dictID, str")
	addResultFlags(entriesCmd)

	rootCmd.AddCommand(entriesCmd)
}
