// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"sort"
	"strings"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// sortEntries orders entries in place. Sorting by str compares canonical
// terms and breaks ties by id; every other sort key orders by id. All
// comparisons ignore case.
func sortEntries(entries []types.Entry, opts types.Options) {
	if opts.Sort == types.SortStr {
		sort.SliceStable(entries, func(i, j int) bool {
			if c := compareFold(entries[i].MainTerm(), entries[j].MainTerm()); c != 0 {
				return c < 0
			}
			return compareFold(entries[i].ID, entries[j].ID) < 0
		})
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return compareFold(entries[i].ID, entries[j].ID) < 0
	})
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// paginate returns the window of entries for the requested page. Pages past
// the end yield an empty slice.
func paginate(entries []types.Entry, page, perPage int) []types.Entry {
	start := (page - 1) * perPage
	if start >= len(entries) {
		return []types.Entry{}
	}
	end := min(page*perPage, len(entries))
	return entries[start:end]
}
