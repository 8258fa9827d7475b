// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/morganforge/splasp-tui/internal/ui/styles"
	"github.com/morganforge/splasp-tui/internal/util"
)

// =============================================================================
// TABLE COMPONENT
// =============================================================================

// Column describes one table column.
type Column struct {
	Title string
	Width int
}

// Table renders rows of text data with display-width-aware truncation,
// so wide (CJK) characters do not break the column alignment.
type Table struct {
	Columns  []Column
	Selected int
	theme    *styles.Theme
}

// NewTable creates a table with the given columns.
func NewTable(theme *styles.Theme, columns ...Column) *Table {
	return &Table{Columns: columns, Selected: -1, theme: theme}
}

// View renders the header row plus all data rows.
func (t *Table) View(rows [][]string) string {
	var sb strings.Builder

	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = util.PadRight(util.TruncateWidth(col.Title, col.Width), col.Width)
	}
	sb.WriteString(t.theme.TableHeader.Render(strings.Join(headers, "  ")))
	sb.WriteString("\n")

	for ri, row := range rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = util.PadRight(util.TruncateWidth(cell, t.Columns[i].Width), t.Columns[i].Width)
		}
		line := strings.Join(cells, "  ")
		if ri == t.Selected {
			sb.WriteString(t.theme.TableRowSelected.Render(line))
		} else {
			sb.WriteString(t.theme.TableRow.Render(line))
		}
		if ri < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
