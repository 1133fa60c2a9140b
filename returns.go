package navlog

import (
	"github.com/etnz/navlog/date"
	"github.com/shopspring/decimal"
)

// Return is the change of a fund price since its previous as-of date.
type Return struct {
	On       date.Date
	Price    Price
	Previous Price
	Change   decimal.Decimal // price/previous - 1
}

// Returns computes the successive returns of a fund from the history.
// The first known price has no predecessor and produces no Return, neither does a
// zero previous price.
func Returns(t *Table, id ID) []Return {
	series := t.Series(id)
	if series.Len() < 2 {
		return nil
	}
	returns := make([]Return, 0, series.Len()-1)
	var prev Price
	first := true
	for on, p := range series.Values() {
		if !first && prev != 0 {
			change := decimal.NewFromInt(int64(p)).Div(decimal.NewFromInt(int64(prev))).Sub(decimal.NewFromInt(1))
			returns = append(returns, Return{On: on, Price: p, Previous: prev, Change: change})
		}
		prev, first = p, false
	}
	return returns
}
