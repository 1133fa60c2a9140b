package navlog

import (
	"maps"
	"slices"
	"time"

	"github.com/etnz/navlog/date"
)

// Row is one fetch cycle of the history. It is sparse: a fund that was not fetched
// in that cycle has no entry in either map.
type Row struct {
	FetchedAt time.Time
	Prices    map[ID]Price
	Dates     map[ID]date.Date
}

// NewRow returns an empty row stamped at fetchedAt.
func NewRow(fetchedAt time.Time) Row {
	return Row{
		FetchedAt: fetchedAt,
		Prices:    make(map[ID]Price),
		Dates:     make(map[ID]date.Date),
	}
}

// Has reports whether the row carries anything for id.
func (r Row) Has(id ID) bool {
	_, p := r.Prices[id]
	_, d := r.Dates[id]
	return p || d
}

func (r Row) clone() Row {
	return Row{FetchedAt: r.FetchedAt, Prices: maps.Clone(r.Prices), Dates: maps.Clone(r.Dates)}
}

// Table is the whole price history, rows sorted by fetch time.
//
// The set of funds grows as new ids are merged: ids keeps them in column order.
type Table struct {
	ids  []ID
	rows []Row
}

// NewTable returns an empty history.
func NewTable() *Table { return &Table{} }

// IDs returns the funds known to the history, in column order.
func (t *Table) IDs() []ID { return slices.Clone(t.ids) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of the rows in chronological order.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.clone()
	}
	return rows
}

// addID registers a column pair for id if it is new.
func (t *Table) addID(id ID) {
	if !slices.Contains(t.ids, id) {
		t.ids = append(t.ids, id)
	}
}

// sort keeps rows ordered by fetch time, rows fetched at the same second keep their order.
func (t *Table) sort() {
	slices.SortStableFunc(t.rows, func(a, b Row) int { return a.FetchedAt.Compare(b.FetchedAt) })
}

// Merge appends the batch as a new row fetched at fetchedAt (truncated to the second,
// the resolution of the history file).
//
// Before appending, every row holding the same as-of date as the batch for one of
// its funds is removed, the whole row, so that a re-fetch of an unchanged page replaces
// the previous record instead of duplicating it. Rows for other dates are untouched.
// It returns the number of rows removed. An empty batch is a no-op.
func (t *Table) Merge(b *Batch, fetchedAt time.Time) (replaced int) {
	if b.Len() == 0 {
		return 0
	}
	row := NewRow(fetchedAt.Truncate(time.Second))
	for o := range b.Observations() {
		row.Prices[o.ID] = o.Price
		row.Dates[o.ID] = o.AsOf
		t.addID(o.ID)
	}

	before := len(t.rows)
	t.rows = slices.DeleteFunc(t.rows, func(r Row) bool {
		for o := range b.Observations() {
			if on, ok := r.Dates[o.ID]; ok && on == o.AsOf {
				return true
			}
		}
		return false
	})
	replaced = before - len(t.rows)

	t.rows = append(t.rows, row)
	t.sort()
	return replaced
}

// Series returns the price history of a fund indexed by as-of date.
// When several rows share an as-of date the most recently fetched one wins.
func (t *Table) Series(id ID) *date.History[Price] {
	h := new(date.History[Price])
	for _, r := range t.rows {
		p, okp := r.Prices[id]
		on, okd := r.Dates[id]
		if !okp || !okd {
			continue
		}
		h.Append(on, p)
	}
	return h
}
