package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/navlog"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ReturnsMarkdown renders the successive returns of a fund.
func ReturnsMarkdown(id navlog.ID, returns []navlog.Return) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Returns for %s", id))

	if len(returns) == 0 {
		doc.PlainText("Not enough prices to compute a return.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "基準価額", "Change"},
		Rows:   [][]string{},
	}
	for _, r := range returns {
		table.Rows = append(table.Rows, []string{
			r.On.String(),
			r.Price.Display(),
			Percent(r.Change),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Percent formats a ratio as a signed percentage with two decimals, e.g. "+1.25%".
// 0 is represented as "-".
func Percent(ratio decimal.Decimal) string {
	p := ratio.Mul(hundred).Round(2)
	if p.IsZero() {
		return "-"
	}
	if p.IsPositive() {
		return "+" + p.StringFixed(2) + "%"
	}
	return p.StringFixed(2) + "%"
}
