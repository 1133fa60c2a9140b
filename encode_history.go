package navlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/etnz/navlog/date"
	"github.com/shopspring/decimal"
)

// FetchDateFormat is the layout of the fetch_date column.
const FetchDateFormat = "2006-01-02 15:04:05"

const (
	colFetchDate  = "fetch_date"
	dateColSuffix = "_date"
)

// This file contains the CSV codec of the history.
//
// The history is a single table: a fetch_date column, then for each fund two columns,
// "{id}" with the price and "{id}_date" with the as-of date. Empty cells mean the fund
// was not fetched in that cycle. The file is meant to be opened in a spreadsheet too,
// so decoding is lenient on what spreadsheets write back (e.g. "9876.0" prices).

// EncodeHistory writes the table in CSV format.
// It fails, writing nothing, when two funds would produce the same column.
func EncodeHistory(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, 1+2*len(t.ids))
	header = append(header, colFetchDate)
	for _, id := range t.ids {
		header = append(header, string(id), string(id)+dateColSuffix)
	}
	// A file with duplicated columns could not be decoded back.
	names := make(map[string]bool, len(header))
	for _, h := range header {
		if names[h] {
			return fmt.Errorf("duplicated column %q", h)
		}
		names[h] = true
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(header))
	for _, r := range t.rows {
		rec = rec[:0]
		rec = append(rec, r.FetchedAt.Format(FetchDateFormat))
		for _, id := range t.ids {
			price := ""
			if p, ok := r.Prices[id]; ok {
				price = p.String()
			}
			rec = append(rec, price, r.Dates[id].String()) // zero date is ""
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeHistory reads a table in CSV format. Fetch dates are read in the local time zone.
func DecodeHistory(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty file, want at least a %q column", colFetchDate)
	}
	if err != nil {
		return nil, err
	}

	// Map the header to column roles.
	names := make(map[string]int)
	for i, h := range header {
		if _, dup := names[h]; dup {
			return nil, fmt.Errorf("duplicated column %q", h)
		}
		names[h] = i
	}
	fetchCol, ok := names[colFetchDate]
	if !ok {
		return nil, fmt.Errorf("missing column %q", colFetchDate)
	}

	type pair struct {
		id         ID
		price, day int
	}
	var pairs []pair
	for i, h := range header {
		if i == fetchCol {
			continue
		}
		if base, found := strings.CutSuffix(h, dateColSuffix); found {
			if _, isPair := names[base]; isPair {
				continue // read along with its price column
			}
		}
		if h == "" {
			return nil, fmt.Errorf("column %d has no name", i+1)
		}
		day, ok := names[h+dateColSuffix]
		if !ok {
			return nil, fmt.Errorf("column %q has no matching %q column", h, h+dateColSuffix)
		}
		pairs = append(pairs, pair{ID(h), i, day})
	}

	t := NewTable()
	for _, p := range pairs {
		t.addID(p.id)
	}

	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		at, err := time.ParseInLocation(FetchDateFormat, rec[fetchCol], time.Local)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s: %w", line, colFetchDate, err)
		}
		row := NewRow(at)
		for _, p := range pairs {
			if s := rec[p.price]; s != "" {
				price, err := decodePrice(s)
				if err != nil {
					return nil, fmt.Errorf("line %d: column %q: %w", line, p.id, err)
				}
				row.Prices[p.id] = price
			}
			if s := rec[p.day]; s != "" {
				on, err := date.Parse(s)
				if err != nil {
					return nil, fmt.Errorf("line %d: column %q: %w", line, string(p.id)+dateColSuffix, err)
				}
				row.Dates[p.id] = on
			}
		}
		t.rows = append(t.rows, row)
	}
	// Hand edited files may be out of order.
	if !slices.IsSortedFunc(t.rows, func(a, b Row) int { return a.FetchedAt.Compare(b.FetchedAt) }) {
		t.sort()
	}
	return t, nil
}

// decodePrice reads an integer price, accepting a zero fractional part.
func decodePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("invalid price %q: not a whole number", s)
	}
	return Price(d.IntPart()), nil
}
