// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Sort keys accepted in Options.Sort.
const (
	SortID     = "id"
	SortDictID = "dictID"
	SortStr    = "str"
)

// Filter restricts a lookup.
type Filter struct {
	// ID lists the identifiers (full URIs or bare accessions) to look up.
	ID []string `json:"id,omitempty" yaml:"id,omitempty"`

	// DictID lists the dictionaries the caller is interested in.
	DictID []string `json:"dictID,omitempty" yaml:"dictID,omitempty"`
}

// Options are the query options of every dictionary operation. Values
// that are out of range are treated as unset, never rejected.
type Options struct {
	Filter  Filter `json:"filter" yaml:"filter"`
	Sort    string `json:"sort,omitempty" yaml:"sort,omitempty"`
	Page    int    `json:"page,omitempty" yaml:"page,omitempty"`
	PerPage int    `json:"perPage,omitempty" yaml:"perPage,omitempty"`

	// Z selects the auxiliary fields kept in the output. Nil keeps all of
	// them; an empty non-nil slice removes the z object altogether.
	Z []string `json:"z,omitempty" yaml:"z,omitempty"`
}

// HasPage reports whether Page holds a usable page number.
func (o Options) HasPage() bool { return o.Page >= 1 }

// HasPerPage reports whether PerPage holds a usable page size.
func (o Options) HasPerPage() bool { return o.PerPage >= 1 }

// HasSort reports whether Sort is one of the recognized sort keys.
func (o Options) HasSort() bool {
	switch o.Sort {
	case SortID, SortDictID, SortStr:
		return true
	}
	return false
}

// FilterIDs returns the requested identifiers with blank entries removed.
func (o Options) FilterIDs() []string {
	var ids []string
	for _, id := range o.Filter.ID {
		if strings.TrimSpace(id) == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// HasFilterID reports whether the lookup is restricted to at least one
// non-blank identifier.
func (o Options) HasFilterID() bool { return len(o.FilterIDs()) > 0 }

// AllowsDict reports whether dictID passes the Filter.DictID restriction.
// An empty restriction allows every dictionary.
func (o Options) AllowsDict(dictID string) bool {
	var allowed []string
	for _, d := range o.Filter.DictID {
		if strings.TrimSpace(d) != "" {
			allowed = append(allowed, d)
		}
	}
	if len(allowed) == 0 {
		return true
	}
	for _, d := range allowed {
		if d == dictID {
			return true
		}
	}
	return false
}
