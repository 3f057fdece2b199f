package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteTable writes t as a boxed text table. Column widths are measured in
// display cells so wide characters stay aligned.
func WriteTable(w io.Writer, t Table) error {
	widths := columnWidths(t)

	var b strings.Builder
	writeBorder(&b, widths)
	writeRow(&b, t.Columns, widths)
	writeBorder(&b, widths)
	for _, row := range t.Rows {
		writeRow(&b, row, widths)
	}
	writeBorder(&b, widths)
	if len(t.Rows) == 0 {
		b.WriteString("(no rows)\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func columnWidths(t Table) []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if n := runewidth.StringWidth(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func writeBorder(b *strings.Builder, widths []int) {
	b.WriteString("+")
	for _, n := range widths {
		b.WriteString(strings.Repeat("-", n+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("|")
	for i, n := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(b, " %s |", runewidth.FillRight(cell, n))
	}
	b.WriteString("\n")
}
