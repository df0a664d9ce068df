package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncateString cuts s to maxLen cells, ending in "…" when shortened.
// Wide characters count as two cells.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// singleLine folds a multi-line task text onto one row.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
