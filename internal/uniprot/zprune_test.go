// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

func fullZ() *types.Z {
	return &types.Z{
		Genes:   []string{"MCAM"},
		Species: "Homo sapiens (Human)",
		Status:  "reviewed",
		Entry:   "MUC18_HUMAN",
		Score:   "5 out of 5",
	}
}

func TestPruneZ(t *testing.T) {
	tests := []struct {
		name string
		keep []string
		want *types.Z
	}{
		{"nil keeps everything", nil, fullZ()},
		{"empty removes z", []string{}, nil},
		{"subset", []string{"genes", "score"}, &types.Z{Genes: []string{"MCAM"}, Score: "5 out of 5"}},
		{"unknown keys only", []string{"nope"}, nil},
		{"single key", []string{"entry"}, &types.Z{Entry: "MUC18_HUMAN"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []types.Entry{{ID: "x", Terms: []types.Term{{Str: "x"}}, Z: fullZ()}}
			out := pruneZ(entries, tt.keep)
			require.Len(t, out, 1)
			assert.Equal(t, tt.want, out[0].Z)
		})
	}
}

func TestPruneZ_MissingFieldDropsZ(t *testing.T) {
	entries := []types.Entry{{ID: "x", Z: &types.Z{Species: "Homo sapiens"}}}
	out := pruneZ(entries, []string{"genes"})
	assert.Nil(t, out[0].Z)
}

func TestPruneZ_NilZ(t *testing.T) {
	entries := []types.Entry{{ID: "x"}}
	out := pruneZ(entries, []string{"genes"})
	assert.Nil(t, out[0].Z)
}
