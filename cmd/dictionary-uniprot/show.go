// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dictionary-uniprot/internal/uniprot"
	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a result file saved with --save",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	rf, err := uniprot.ReadResultFile(args[0])
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	if format == types.OutputTable {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s", rf.Operation)
		if rf.Query != "" {
			fmt.Fprintf(w, " %q", rf.Query)
		}
		fmt.Fprintf(w, " at %s\n\n", rf.Summary.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return uniprot.Format(rf.Result(), format, cmd.OutOrStdout())
}

func init() {
	showCmd.Flags().String("format", string(types.OutputTable), "output format: table, json, yaml")

	rootCmd.AddCommand(showCmd)
}
