// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import "strings"

// Column positions in a tab-separated response row.
const (
	colID = iota
	colFunction
	colProteinNames
	colGenes
	colOrganism
	colReviewed
	colEntryName
	colAnnotationScore
)

// row is one data line of a tabular response, split on tabs. Missing
// trailing columns read as empty strings.
type row []string

func (r row) col(i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

// parseTab splits a tab-separated response into rows. The first line is
// the header and the last line is the empty remainder after the final
// newline; both are dropped. Column counts are not validated.
func parseTab(body string) []row {
	lines := strings.Split(body, "\n")
	if len(lines) < 2 {
		return nil
	}
	lines = lines[1 : len(lines)-1]

	rows := make([]row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Split(line, "\t"))
	}
	return rows
}
