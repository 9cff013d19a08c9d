// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidators(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantPage    bool
		wantPerPage bool
		wantSort    bool
	}{
		{"zero value", Options{}, false, false, false},
		{"valid", Options{Page: 1, PerPage: 1, Sort: SortStr}, true, true, true},
		{"negative", Options{Page: -1, PerPage: -5, Sort: "score"}, false, false, false},
		{"dictID sort", Options{Sort: SortDictID}, false, false, true},
		{"id sort", Options{Sort: SortID}, false, false, true},
		{"sort is case-sensitive", Options{Sort: "ID"}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPage, tt.opts.HasPage())
			assert.Equal(t, tt.wantPerPage, tt.opts.HasPerPage())
			assert.Equal(t, tt.wantSort, tt.opts.HasSort())
		})
	}
}

func TestFilterIDs(t *testing.T) {
	opts := Options{Filter: Filter{ID: []string{"", "  ", "P1", "\t", "https://www.uniprot.org/uniprot/P2"}}}
	assert.Equal(t, []string{"P1", "https://www.uniprot.org/uniprot/P2"}, opts.FilterIDs())
	assert.True(t, opts.HasFilterID())

	blank := Options{Filter: Filter{ID: []string{"", " "}}}
	assert.Empty(t, blank.FilterIDs())
	assert.False(t, blank.HasFilterID())

	assert.False(t, Options{}.HasFilterID())
}

func TestAllowsDict(t *testing.T) {
	const uniprot = "https://www.uniprot.org"

	assert.True(t, Options{}.AllowsDict(uniprot))
	assert.True(t, Options{Filter: Filter{DictID: []string{""}}}.AllowsDict(uniprot))
	assert.True(t, Options{Filter: Filter{DictID: []string{"http://x", uniprot}}}.AllowsDict(uniprot))
	assert.False(t, Options{Filter: Filter{DictID: []string{"http://x"}}}.AllowsDict(uniprot))
}
