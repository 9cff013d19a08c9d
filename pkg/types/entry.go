// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types shared by the dictionary adapter,
// its transports and the CLI: entry and match records, query options, and
// adapter configuration.
package types

// MatchType classifies a string-match record.
type MatchType string

const (
	// MatchSynonym marks a record whose canonical term starts with the query.
	MatchSynonym MatchType = "S"
	// MatchText marks any other text match.
	MatchText MatchType = "T"
)

// Term is one name under which an entry can be found.
type Term struct {
	Str string `json:"str" yaml:"str"`
}

// Z holds the auxiliary fields of an entry. A field is set only when the
// corresponding source column was non-empty.
type Z struct {
	Genes   []string `json:"genes,omitempty" yaml:"genes,omitempty"`
	Species string   `json:"species,omitempty" yaml:"species,omitempty"`
	Status  string   `json:"status,omitempty" yaml:"status,omitempty"`
	Entry   string   `json:"entry,omitempty" yaml:"entry,omitempty"`
	Score   string   `json:"score,omitempty" yaml:"score,omitempty"`
}

// ZKeys lists the auxiliary field names in their canonical order.
var ZKeys = []string{"genes", "species", "status", "entry", "score"}

// Has reports whether the auxiliary field named key is set.
func (z *Z) Has(key string) bool {
	if z == nil {
		return false
	}
	switch key {
	case "genes":
		return z.Genes != nil
	case "species":
		return z.Species != ""
	case "status":
		return z.Status != ""
	case "entry":
		return z.Entry != ""
	case "score":
		return z.Score != ""
	}
	return false
}

// IsEmpty reports whether no auxiliary field is set.
func (z *Z) IsEmpty() bool {
	for _, k := range ZKeys {
		if z.Has(k) {
			return false
		}
	}
	return true
}

// Entry is a dictionary record. Entry records returned by a lookup leave
// Str and Type empty; match records returned by a string search fill both.
type Entry struct {
	// ID is the record URI: a fixed prefix plus the remote identifier.
	ID string `json:"id" yaml:"id"`

	// DictID is the URI of the dictionary the record belongs to.
	DictID string `json:"dictID" yaml:"dictID"`

	// Str is the canonical term that matched (match records only).
	Str string `json:"str,omitempty" yaml:"str,omitempty"`

	// Descr is the cleaned-up function description, if any.
	Descr string `json:"descr,omitempty" yaml:"descr,omitempty"`

	// Type is S or T (match records only).
	Type MatchType `json:"type,omitempty" yaml:"type,omitempty"`

	// Terms is never empty; Terms[0] is the canonical term.
	Terms []Term `json:"terms" yaml:"terms"`

	Z *Z `json:"z,omitempty" yaml:"z,omitempty"`
}

// MainTerm returns the canonical term of the entry.
func (e Entry) MainTerm() string {
	if len(e.Terms) == 0 {
		return ""
	}
	return e.Terms[0].Str
}

// Result is the payload of GetEntries and GetEntryMatchesForString.
type Result struct {
	Items []Entry `json:"items" yaml:"items"`
}

// DictInfo describes a dictionary.
type DictInfo struct {
	ID     string `json:"id" yaml:"id"`
	Abbrev string `json:"abbrev" yaml:"abbrev"`
	Name   string `json:"name" yaml:"name"`
}

// DictInfoResult is the payload of GetDictInfos.
type DictInfoResult struct {
	Items []DictInfo `json:"items" yaml:"items"`
}
