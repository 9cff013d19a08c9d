// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"fmt"
	"strings"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// uniprotColumns lists the columns requested from the API, in the order
// the mapper reads them.
const uniprotColumns = "id,comment(FUNCTION),protein names,genes,organism,reviewed,entry name,annotation score"

// buildEntryURLs returns one URL per requested identifier, or a single
// all-records URL when no non-blank identifier is requested. Repeated
// identifiers produce a single URL.
func (d *Dictionary) buildEntryURLs(opts types.Options) []string {
	ids := opts.FilterIDs()
	if len(ids) == 0 {
		return []string{d.entrySearchURL(opts, "")}
	}

	seen := make(map[string]bool, len(ids))
	var urls []string
	for _, id := range ids {
		u := d.entrySearchURL(opts, id)
		if seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls
}

// entrySearchURL builds the lookup URL for entryID, or the paged,
// id-sorted listing of all records when entryID is empty.
func (d *Dictionary) entrySearchURL(opts types.Options, entryID string) string {
	var b strings.Builder
	if entryID == "" {
		b.WriteString(strings.Replace(d.cfg.URLGetEntries, types.QueryPlaceholder, "*", 1))
		b.WriteString("&columns=" + encodeQueryComponent(uniprotColumns))
		b.WriteString("&sort=id&desc=no")
		b.WriteString(d.limitOffset(opts))
	} else {
		query := "id:" + encodeQueryComponent(lastPathSegment(entryID))
		b.WriteString(strings.Replace(d.cfg.URLGetEntries, types.QueryPlaceholder, query, 1))
		b.WriteString("&columns=" + encodeQueryComponent(uniprotColumns))
	}
	b.WriteString("&format=" + d.cfg.Format)
	return b.String()
}

// matchSearchURL builds the free-text search URL for str, best-scored
// results first.
func (d *Dictionary) matchSearchURL(str string, opts types.Options) string {
	var b strings.Builder
	b.WriteString(strings.Replace(d.cfg.URLGetMatches, types.QueryPlaceholder, encodeQueryComponent(str), 1))
	b.WriteString("&columns=" + encodeQueryComponent(uniprotColumns))
	b.WriteString("&sort=score")
	b.WriteString(d.limitOffset(opts))
	b.WriteString("&format=" + d.cfg.Format)
	return b.String()
}

func (d *Dictionary) limitOffset(opts types.Options) string {
	limit := d.pageSize(opts)
	offset := 0
	if opts.HasPage() {
		offset = (opts.Page - 1) * limit
	}
	return fmt.Sprintf("&limit=%d&offset=%d", limit, offset)
}

func (d *Dictionary) pageSize(opts types.Options) int {
	if opts.HasPerPage() {
		return opts.PerPage
	}
	return d.cfg.PerPageMax
}

// lastPathSegment accepts a full entry URI or a bare accession and
// returns the accession.
func lastPathSegment(id string) string {
	return id[strings.LastIndex(id, "/")+1:]
}

// encodeQueryComponent percent-encodes s, leaving only ASCII letters,
// digits and - _ . ~ unescaped. The UniProt query grammar gives meaning to
// ! ' ( ) and *, so those are escaped too.
func encodeQueryComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}
