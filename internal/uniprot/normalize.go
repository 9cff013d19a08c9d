// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"regexp"
	"strings"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

const functionMarker = "FUNCTION:"

// parenGroup matches one parenthesized group. It is non-greedy, so a group
// ends at the first closing parenthesis: "(B(B))" yields "B(B".
var parenGroup = regexp.MustCompile(`\((.+?)\)`)

// refineDescription strips the leading FUNCTION: marker UniProt puts in
// front of function comments.
func refineDescription(s string) string {
	if !strings.HasPrefix(s, functionMarker) {
		return s
	}
	return strings.TrimSpace(strings.TrimPrefix(s, functionMarker))
}

// beforeFirst returns the trimmed part of s before the first sep.
func beforeFirst(s, sep string) string {
	head, _, _ := strings.Cut(s, sep)
	return strings.TrimSpace(head)
}

// parenthesized returns the contents of every parenthesized group in s,
// left to right.
func parenthesized(s string) []string {
	var out []string
	for _, m := range parenGroup.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1])
	}
	return out
}

// proteinNames splits the protein names column into the recommended name
// and its alternative names, e.g. "Name (Alt1) (Alt2)".
func proteinNames(s string) (main string, alternates []string) {
	return beforeFirst(s, "("), parenthesized(s)
}

// genes returns the gene symbols of the first gene group. Further groups,
// separated by semicolons, are ignored. An empty column yields [""].
func genes(s string) []string {
	return strings.Split(beforeFirst(s, ";"), " ")
}

// buildTerms orders the names of an entry. The entry name leads when
// curator ordering is on and an entry name is present.
func buildTerms(curator bool, entryName, mainTerm string, alternates []string) []types.Term {
	terms := make([]types.Term, 0, len(alternates)+2)
	if curator && entryName != "" {
		terms = append(terms, types.Term{Str: entryName})
	}
	terms = append(terms, types.Term{Str: mainTerm})
	for _, alt := range alternates {
		terms = append(terms, types.Term{Str: alt})
	}
	return terms
}
