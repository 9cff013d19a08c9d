// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"slices"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// pruneZ keeps only the auxiliary fields named in keep. A nil keep leaves
// entries untouched; an empty one removes z from every entry, as does a
// selection that leaves nothing set.
func pruneZ(entries []types.Entry, keep []string) []types.Entry {
	if keep == nil {
		return entries
	}
	for i := range entries {
		entries[i].Z = pruneOne(entries[i].Z, keep)
	}
	return entries
}

func pruneOne(z *types.Z, keep []string) *types.Z {
	if z == nil || len(keep) == 0 {
		return nil
	}
	out := &types.Z{}
	if slices.Contains(keep, "genes") {
		out.Genes = z.Genes
	}
	if slices.Contains(keep, "species") {
		out.Species = z.Species
	}
	if slices.Contains(keep, "status") {
		out.Status = z.Status
	}
	if slices.Contains(keep, "entry") {
		out.Entry = z.Entry
	}
	if slices.Contains(keep, "score") {
		out.Score = z.Score
	}
	if out.IsEmpty() {
		return nil
	}
	return out
}
