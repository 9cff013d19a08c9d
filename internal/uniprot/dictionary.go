// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package uniprot exposes the UniProt protein knowledgebase as a term
// dictionary. It builds query URLs for the UniProt tabular API, parses the
// tab-separated responses, normalizes protein and gene names into terms,
// and sorts and pages the resulting entry and match records.
package uniprot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/dictionary-uniprot/internal/metrics"
	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// Fetcher retrieves the body of a URL. *httputil.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithLogger sets the logger used when the configuration enables logging.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Dictionary) { d.log = l }
}

// WithMetrics records request and result metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dictionary) { d.metrics = m }
}

// Dictionary is the UniProt dictionary adapter. It holds only immutable
// configuration and is safe for concurrent use.
type Dictionary struct {
	cfg     types.DictionaryConfig
	fetcher Fetcher
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// New returns a Dictionary that fetches through f. Empty fields of cfg
// take their defaults.
func New(cfg types.DictionaryConfig, f Fetcher, opts ...Option) *Dictionary {
	cfg.ApplyDefaults()
	d := &Dictionary{cfg: cfg, fetcher: f, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	if !cfg.Log {
		d.log = zerolog.Nop()
	}
	d.log = d.log.With().Str("component", "uniprot").Logger()
	return d
}

// Config returns the configuration the dictionary was built with.
func (d *Dictionary) Config() types.DictionaryConfig { return d.cfg }

// Info returns the descriptor of the UniProt dictionary.
func Info() types.DictInfo {
	return types.DictInfo{
		ID:     DictID,
		Abbrev: "UniProt",
		Name:   "Universal Protein Resource",
	}
}

// GetDictInfos returns the UniProt descriptor, or nothing when the
// identifier or dictionary filter excludes it.
func (d *Dictionary) GetDictInfos(opts types.Options) types.DictInfoResult {
	ids := opts.FilterIDs()
	if len(ids) > 0 && !containsString(ids, DictID) {
		return types.DictInfoResult{Items: []types.DictInfo{}}
	}
	if !opts.AllowsDict(DictID) {
		return types.DictInfoResult{Items: []types.DictInfo{}}
	}
	return types.DictInfoResult{Items: []types.DictInfo{Info()}}
}

// GetEntries looks up the entries named in opts.Filter.ID, or lists one
// page of all entries when no identifier is given.
//
// Identifier lookups are issued concurrently. Their results are joined in
// request order, sorted and paged locally. If any request fails, GetEntries
// still waits for the others and returns the first error only.
func (d *Dictionary) GetEntries(ctx context.Context, opts types.Options) (types.Result, error) {
	if !opts.AllowsDict(DictID) {
		return emptyResult(), nil
	}

	urls := d.buildEntryURLs(opts)
	results := make([][]types.Entry, len(urls))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			body, err := d.fetch(ctx, metrics.OpEntries, u)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = d.mapEntries(body)
		}(i, u)
	}
	wg.Wait()

	if firstErr != nil {
		return types.Result{}, fmt.Errorf("getting entries: %w", firstErr)
	}

	all := []types.Entry{}
	for _, r := range results {
		all = append(all, r...)
	}

	// The all-records listing is already sorted and paged by UniProt.
	if opts.HasFilterID() {
		sortEntries(all, opts)
		page := 1
		if opts.HasPage() {
			page = opts.Page
		}
		all = paginate(all, page, d.pageSize(opts))
	}

	all = pruneZ(all, opts.Z)
	d.metrics.ObserveRecords(metrics.OpEntries, len(all))
	return types.Result{Items: all}, nil
}

// GetEntryMatchesForString searches UniProt for str. A blank str returns an
// empty result without contacting the API.
func (d *Dictionary) GetEntryMatchesForString(ctx context.Context, str string, opts types.Options) (types.Result, error) {
	if strings.TrimSpace(str) == "" || !opts.AllowsDict(DictID) {
		return emptyResult(), nil
	}

	body, err := d.fetch(ctx, metrics.OpMatches, d.matchSearchURL(str, opts))
	if err != nil {
		return types.Result{}, fmt.Errorf("matching %q: %w", str, err)
	}

	matches := pruneZ(d.mapMatches(body, str), opts.Z)
	d.metrics.ObserveRecords(metrics.OpMatches, len(matches))
	return types.Result{Items: matches}, nil
}

func (d *Dictionary) fetch(ctx context.Context, op, u string) (string, error) {
	d.log.Info().Str("operation", op).Str("url", u).Msg("request")

	start := time.Now()
	body, err := d.fetcher.Fetch(ctx, u)
	d.metrics.ObserveRequest(op, time.Since(start), err)
	if err != nil {
		d.log.Warn().Err(err).Str("url", u).Msg("request failed")
	}
	return body, err
}

func emptyResult() types.Result {
	return types.Result{Items: []types.Entry{}}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
