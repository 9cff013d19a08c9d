// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dictionary-uniprot/internal/metrics"
)

var matchCmd = &cobra.Command{
	Use:   "match <query>",
	Short: "Search UniProt entries matching a string",
	Long: `Match searches UniProt for entries whose protein names, gene names or
entry names match the query. Results come back ranked by UniProt's score.
Each match is marked S when its canonical term starts with the query and T
otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	opts := optionsFromFlags(cmd)

	res, err := s.dict.GetEntryMatchesForString(cmd.Context(), query, opts)
	if err != nil {
		return err
	}
	if err := emitResult(cmd, cmd.OutOrStdout(), metrics.OpMatches, query, opts, res); err != nil {
		return err
	}
	return s.close()
}

func init() {
	addResultFlags(matchCmd)

	rootCmd.AddCommand(matchCmd)
}
