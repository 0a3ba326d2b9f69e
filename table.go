//-----------------------------------------------------------------------------
/*

Tables

Format rows of strings as aligned columns.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

//-----------------------------------------------------------------------------

// TableString returns a string for a table of row/column strings.
// Columns are padded to their widest cell plus the margin, or to a minimum
// width from csize. Trailing padding is dropped.
func TableString(
	rows [][]string, // table rows [[col0, col1, col2...,colN]...]
	csize []int, // minimum column widths, nil for none
	cmargin int, // column to column margin
) string {
	if len(rows) == 0 {
		return ""
	}
	ncols := len(rows[0])
	width := make([]int, ncols)
	if csize != nil {
		if len(csize) != ncols {
			panic("len(csize) != ncols")
		}
		copy(width, csize)
	}
	// bump up the column widths if required
	for i, row := range rows {
		if len(row) != ncols {
			panic(fmt.Sprintf("ncols row%d != ncols row0", i))
		}
		for j, cell := range row {
			width[j] = max(width[j], runewidth.StringWidth(cell)+cmargin)
		}
	}
	lines := make([]string, len(rows))
	var sb strings.Builder
	for i, row := range rows {
		sb.Reset()
		for j, cell := range row {
			sb.WriteString(runewidth.FillRight(cell, width[j]))
		}
		lines[i] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

//-----------------------------------------------------------------------------
