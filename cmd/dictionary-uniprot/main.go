// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dictionary-uniprot CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dictionary-uniprot/internal/logger"
	"github.com/pdiddy/dictionary-uniprot/internal/secrets"
	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds the credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// log is the CLI logger, configured in PersistentPreRunE.
var log = zerolog.Nop()

// configFileUsed is the config file read by initConfig, if any.
var configFileUsed string

// rootCmd is the base command for the dictionary-uniprot CLI.
var rootCmd = &cobra.Command{
	Use:   "dictionary-uniprot",
	Short: "Look up UniProt proteins as dictionary terms",
	Long: `dictionary-uniprot exposes the UniProt protein knowledgebase as a term
dictionary. Entries are looked up by URI or accession, or found by matching
their protein names, gene names and entry names against a search string.

Results can be printed as a table, JSON or YAML, saved to a result file,
exported to a local SQLite term store, or served as MCP tools.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		log = logger.New(logger.Config{Level: level, Pretty: true})
		if configFileUsed != "" {
			log.Debug().Str("file", configFileUsed).Msg("using config file")
		}

		s, err := secrets.Load(".secrets/", log)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			log.Debug().Strs("keys", s.Keys()).Msg("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./dictionary-uniprot.yaml or ~/.config/dictionary-uniprot/dictionary-uniprot.yaml)")
	flags.String("base-url", types.DefaultBaseURL, "UniProt endpoint")
	flags.Bool("log", false, "log every request URL")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("curator", true, "list the UniProt entry name as the first term")
	flags.String("metrics-file", "", "write Prometheus metrics to this file on exit")
	flags.Duration("timeout", types.DefaultTimeout, "HTTP request timeout")

	for key, flag := range map[string]string{
		"base_url":             "base-url",
		"log":                  "log",
		"optimize_for_curator": "curator",
		"timeout":              "timeout",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dictionary-uniprot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dictionary-uniprot"))
		}
	}

	viper.SetEnvPrefix("DICTIONARY_UNIPROT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		configFileUsed = viper.ConfigFileUsed()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
