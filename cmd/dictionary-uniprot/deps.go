// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dictionary-uniprot/internal/httputil"
	"github.com/pdiddy/dictionary-uniprot/internal/metrics"
	"github.com/pdiddy/dictionary-uniprot/internal/termstore"
	"github.com/pdiddy/dictionary-uniprot/internal/uniprot"
	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// dictionaryConfig merges the config file, environment and flags over the
// defaults.
func dictionaryConfig() (types.DictionaryConfig, error) {
	var cfg types.DictionaryConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.ApplyDefaults()
	cfg.UserAgent = loadedSecrets.UserAgent(cfg.UserAgent)
	return cfg, nil
}

// session is the dictionary with its metrics registry, built once per
// command.
type session struct {
	dict        *uniprot.Dictionary
	registry    *prometheus.Registry
	metricsFile string
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := dictionaryConfig()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	dict := uniprot.New(cfg, httputil.NewClient(cfg.HTTPConfig),
		uniprot.WithLogger(log),
		uniprot.WithMetrics(metrics.New(reg)),
	)

	metricsFile, _ := cmd.Flags().GetString("metrics-file")
	return &session{dict: dict, registry: reg, metricsFile: metricsFile}, nil
}

// close writes the metrics file when one was requested.
func (s *session) close() error {
	if s.metricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(s.metricsFile, s.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

// addResultFlags registers the flags shared by entries and match.
func addResultFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("dict-id", nil, "dictionary ids to accept (default: all)")
	cmd.Flags().Int("page", 0, "1-based page number")
	cmd.Flags().Int("per-page", 0, "items per page (default: per_page_max)")
	cmd.Flags().StringSlice("z", nil, "z fields to keep: genes, species, status, entry, score (default: all)")
	cmd.Flags().Bool("no-z", false, "drop the z object from every record")
	cmd.Flags().String("format", string(types.OutputTable), "output format: table, json, yaml")
	cmd.Flags().String("save", "", "also save the results to this YAML file")
	cmd.Flags().String("store", "", "also export the results to this SQLite term store")
}

func optionsFromFlags(cmd *cobra.Command) types.Options {
	dictIDs, _ := cmd.Flags().GetStringSlice("dict-id")
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")

	opts := types.Options{
		Filter:  types.Filter{DictID: dictIDs},
		Page:    page,
		PerPage: perPage,
	}
	if cmd.Flags().Changed("z") {
		opts.Z, _ = cmd.Flags().GetStringSlice("z")
	}
	if noZ, _ := cmd.Flags().GetBool("no-z"); noZ {
		opts.Z = []string{}
	}
	return opts
}

func outputFormat(cmd *cobra.Command) (types.OutputFormat, error) {
	format, _ := cmd.Flags().GetString("format")
	switch f := types.OutputFormat(strings.ToLower(format)); f {
	case types.OutputTable, types.OutputJSON, types.OutputYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
}

// emitResult prints res and honors --save and --store.
func emitResult(cmd *cobra.Command, w io.Writer, op, query string, opts types.Options, res types.Result) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if err := uniprot.Format(res, format, w); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := uniprot.WriteResultFile(path, op, query, opts, res); err != nil {
			return err
		}
		log.Info().Str("file", path).Int("items", len(res.Items)).Msg("saved results")
	}

	if path, _ := cmd.Flags().GetString("store"); path != "" {
		store, err := termstore.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Put(cmd.Context(), res.Items); err != nil {
			return err
		}
		log.Info().Str("store", path).Int("items", len(res.Items)).Msg("exported to term store")
	}
	return nil
}
