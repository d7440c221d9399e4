package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabWidth is the column interval of tab stops in verse indentation.
const tabWidth = 4

// ExpandTabs converts tab characters to spaces using tabWidth-column tab
// stops. Verse in the corpus uses tabs for indented lines. The startCol
// parameter is the column where the string begins.
func ExpandTabs(s string, startCol int) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		if r != '\t' {
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
			continue
		}
		next := (col/tabWidth + 1) * tabWidth
		sb.WriteString(strings.Repeat(" ", next-col))
		col = next
	}
	return sb.String()
}
