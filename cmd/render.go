package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kylep/otf/models"
)

// renderTable formats a table for console display with padded columns.
func renderTable(t *models.Table) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%-*s", widths[i], cell)
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers)
	sep := make([]string, len(t.Headers))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	writeRow(sep)
	for _, row := range t.Rows {
		writeRow(row)
	}

	return sb.String()
}

// renderDetail formats a single record's display map as key/value lines,
// keys sorted for stable output.
func renderDetail(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	width := 0
	for k := range fields {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		v := fields[k]
		if v == nil {
			continue
		}
		fmt.Fprintf(&sb, "%-*s  %v\n", width, k, v)
	}
	return sb.String()
}
