// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"time"
)

// Defaults applied by DefaultConfig and ApplyDefaults.
const (
	DefaultBaseURL    = "https://www.uniprot.org/uniprot"
	DefaultFormat     = "tab"
	DefaultPerPageMax = 50
	DefaultTimeout    = 60 * time.Second
	DefaultUserAgent  = "dictionary-uniprot/0.1"

	// QueryPlaceholder is replaced by the encoded query in URL templates.
	QueryPlaceholder = "$queryString"
)

// HTTPConfig holds shared HTTP settings used by the transport.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// DictionaryConfig is the static configuration of a dictionary adapter. It
// is fixed at construction and never modified afterwards.
type DictionaryConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the UniProt endpoint the default URL templates point at.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// URLGetEntries is the URL template for entry lookups. It must contain
	// $queryString (default BaseURL + "/?query=$queryString").
	URLGetEntries string `json:"url_get_entries" yaml:"url_get_entries" mapstructure:"url_get_entries"`

	// URLGetMatches is the URL template for string searches.
	URLGetMatches string `json:"url_get_matches" yaml:"url_get_matches" mapstructure:"url_get_matches"`

	// Format is the requested output format (default "tab").
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Log enables logging of every outbound URL.
	Log bool `json:"log" yaml:"log" mapstructure:"log"`

	// OptimizeForCurator puts the UniProt entry name ahead of the protein
	// name in the term list. Nil means on.
	OptimizeForCurator *bool `json:"optimize_for_curator,omitempty" yaml:"optimize_for_curator,omitempty" mapstructure:"optimize_for_curator"`

	// PerPageMax is the page size used when a request has none (default 50).
	PerPageMax int `json:"per_page_max" yaml:"per_page_max" mapstructure:"per_page_max"`
}

// DefaultConfig returns a configuration with every documented default set.
func DefaultConfig() DictionaryConfig {
	var cfg DictionaryConfig
	cfg.ApplyDefaults()
	return cfg
}

// CuratorOrdering reports whether the entry name leads the term list.
func (cfg DictionaryConfig) CuratorOrdering() bool {
	return cfg.OptimizeForCurator == nil || *cfg.OptimizeForCurator
}

// Bool returns a pointer to b, for optional toggles.
func Bool(b bool) *bool { return &b }

// ApplyDefaults fills the empty fields of cfg.
func (cfg *DictionaryConfig) ApplyDefaults() {
	if cfg.OptimizeForCurator == nil {
		cfg.OptimizeForCurator = Bool(true)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.URLGetEntries == "" {
		cfg.URLGetEntries = base + "/?query=" + QueryPlaceholder
	}
	if cfg.URLGetMatches == "" {
		cfg.URLGetMatches = base + "/?query=" + QueryPlaceholder
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.PerPageMax <= 0 {
		cfg.PerPageMax = DefaultPerPageMax
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
}

// OutputFormat selects how the CLI renders results.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)
