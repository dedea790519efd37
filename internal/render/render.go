// Package render formats product records for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/deppfellow/products/internal/model"
)

// EmptyMessage is printed instead of a table when there are no records.
const EmptyMessage = "List of products is empty."

// Column widths, in runes.
const (
	indexWidth  = 4
	nameWidth   = 30
	marketWidth = 20
	countWidth  = 8
)

// Header labels.
const (
	indexLabel  = "No"
	nameLabel   = "Product"
	marketLabel = "Market"
	countLabel  = "Count"
)

// separator is the line printed before the header, after the header
// and after every row.
var separator = "+-" + strings.Join([]string{
	strings.Repeat("-", indexWidth),
	strings.Repeat("-", nameWidth),
	strings.Repeat("-", marketWidth),
	strings.Repeat("-", countWidth),
}, "-+-") + "-+"

// Separator returns the border line the table is drawn with.
func Separator() string {
	return separator
}

// Products writes records as a bordered table, or EmptyMessage when
// records is empty. Index numbers start at 1. Values longer than their
// column are printed in full and push the border out.
func Products(w io.Writer, records []model.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	// Collect into one buffer so a write error is reported once.
	var b strings.Builder

	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
		center(indexLabel, indexWidth),
		center(nameLabel, nameWidth),
		center(marketLabel, marketWidth),
		center(countLabel, countWidth),
	)
	b.WriteString(separator + "\n")

	for i, r := range records {
		fmt.Fprintf(&b, "| %*d | %s | %s | %*d |\n",
			indexWidth, i+1,
			padRight(r.Name, nameWidth),
			padRight(r.Market, marketWidth),
			countWidth, r.Count,
		)
		b.WriteString(separator + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// center pads s on both sides; an odd remainder goes to the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
