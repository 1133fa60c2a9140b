package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/navlog"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the whole history as a table, one row per fetch cycle and
// one column per fund. Cells show the price and its as-of date.
func HistoryMarkdown(t *navlog.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("基準価額 History")

	ids := t.IDs()
	if t.Len() == 0 {
		doc.PlainText("No prices recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Fetched"},
		Rows:      [][]string{},
	}
	for _, id := range ids {
		table.Header = append(table.Header, string(id))
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for _, r := range t.Rows() {
		row := []string{r.FetchedAt.Format(navlog.FetchDateFormat)}
		for _, id := range ids {
			row = append(row, cell(r, id))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// cell formats a fund's value in a row, "-" when the fund was not fetched.
func cell(r navlog.Row, id navlog.ID) string {
	p, okp := r.Prices[id]
	on, okd := r.Dates[id]
	switch {
	case okp && okd:
		return fmt.Sprintf("%s (%s)", p.Display(), on)
	case okp:
		return p.Display()
	case okd:
		return fmt.Sprintf("(%s)", on)
	}
	return "-"
}
