package navlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Registry columns.
const (
	colFundID = "fund_id"
	colURL    = "url"
	colStatus = "status"
)

// LoadRegistry reads the registry CSV file and returns its active instruments in file order.
// Any failure is a *DataFormatError.
func LoadRegistry(path string) ([]Instrument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataFormatError{Path: path, Err: err}
	}
	defer f.Close()
	return DecodeRegistry(f, path)
}

// DecodeRegistry parses a registry in CSV format. name is for error messages only.
//
// The header must contain fund_id, url and status. Other columns are ignored, only
// rows with status "active" are returned.
func DecodeRegistry(r io.Reader, name string) ([]Instrument, error) {
	fail := func(format string, args ...any) error {
		return &DataFormatError{Path: name, Err: fmt.Errorf(format, args...)}
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // short rows are handled below

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fail("empty file, want a header with %s, %s and %s", colFundID, colURL, colStatus)
	}
	if err != nil {
		return nil, &DataFormatError{Path: name, Err: err}
	}

	cols := make(map[string]int)
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff") // spreadsheet tools like to add a BOM.
		}
		cols[strings.TrimSpace(h)] = i
	}
	for _, c := range []string{colFundID, colURL, colStatus} {
		if _, ok := cols[c]; !ok {
			return nil, fail("missing column %q", c)
		}
	}

	cell := func(rec []string, col string) string {
		if i := cols[col]; i < len(rec) {
			return rec[i]
		}
		return ""
	}

	var instruments []Instrument
	seen := make(map[ID]int)
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DataFormatError{Path: name, Err: err}
		}
		line, _ := reader.FieldPos(0)

		inst := Instrument{
			ID:     ID(cell(rec, colFundID)),
			URL:    cell(rec, colURL),
			Status: Status(cell(rec, colStatus)),
		}
		if !inst.IsActive() {
			continue
		}
		if inst.ID == "" {
			return nil, fail("line %d: empty %s", line, colFundID)
		}
		if inst.URL == "" {
			return nil, fail("line %d: empty %s for %q", line, colURL, inst.ID)
		}
		if inst.ID == colFetchDate || string(inst.ID)+dateColSuffix == colFetchDate {
			return nil, fail("line %d: %s %q is reserved by the history file", line, colFundID, inst.ID)
		}
		if prev, dup := seen[inst.ID]; dup {
			return nil, fail("line %d: %s %q already defined on line %d", line, colFundID, inst.ID, prev)
		}
		seen[inst.ID] = line
		instruments = append(instruments, inst)
	}

	// In the history, fund "A" owns the columns "A" and "A_date": a fund named "A_date" would clash.
	for _, inst := range instruments {
		col := inst.ID + dateColSuffix
		if line, clash := seen[col]; clash {
			return nil, fail("line %d: %s %q clashes with the date column of %q", line, colFundID, col, inst.ID)
		}
	}
	return instruments, nil
}
