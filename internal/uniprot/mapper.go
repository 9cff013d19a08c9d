// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"strings"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

const (
	// DictID identifies the UniProt dictionary.
	DictID = "https://www.uniprot.org"

	// entryIDPrefix is prepended to accessions to form entry URIs.
	entryIDPrefix = DictID + "/uniprot/"
)

// mapEntries converts a tabular response into entry records.
func (d *Dictionary) mapEntries(body string) []types.Entry {
	rows := parseTab(body)
	entries := make([]types.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, d.entryFromRow(r))
	}
	return entries
}

// mapMatches converts a tabular response into match records for query.
func (d *Dictionary) mapMatches(body, query string) []types.Entry {
	rows := parseTab(body)
	matches := make([]types.Entry, 0, len(rows))
	for _, r := range rows {
		matches = append(matches, d.matchFromRow(r, query))
	}
	return matches
}

func (d *Dictionary) entryFromRow(r row) types.Entry {
	mainTerm, alternates := proteinNames(r.col(colProteinNames))
	e := types.Entry{
		ID:     entryIDPrefix + r.col(colID),
		DictID: DictID,
		Terms:  buildTerms(d.cfg.CuratorOrdering(), r.col(colEntryName), mainTerm, alternates),
		Z:      zFromRow(r),
	}
	if descr := r.col(colFunction); descr != "" {
		e.Descr = refineDescription(descr)
	}
	return e
}

// matchFromRow is entryFromRow plus the matched string and its type: S when
// the canonical term starts with query (case-sensitive), T otherwise.
func (d *Dictionary) matchFromRow(r row, query string) types.Entry {
	e := d.entryFromRow(r)
	e.Str = e.MainTerm()
	e.Type = types.MatchText
	if strings.HasPrefix(e.Str, query) {
		e.Type = types.MatchSynonym
	}
	return e
}

func zFromRow(r row) *types.Z {
	z := &types.Z{
		Species: r.col(colOrganism),
		Status:  r.col(colReviewed),
		Entry:   r.col(colEntryName),
		Score:   r.col(colAnnotationScore),
	}
	if g := r.col(colGenes); g != "" {
		z.Genes = genes(g)
	}
	return z
}
