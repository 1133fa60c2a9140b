package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/navlog"
	"github.com/etnz/navlog/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tableRows parses markdown and returns the number of header and body rows of its first table.
func tableRows(t *testing.T, markdown string) (rows int) {
	t.Helper()
	source := []byte(markdown)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	found := false
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			found = true
		case *east.TableHeader, *east.TableRow:
			rows++
		}
		return ast.WalkContinue, nil
	})
	if !found {
		t.Fatalf("no table found in:\n%s", markdown)
	}
	return rows
}

func TestSummary(t *testing.T) {
	b := navlog.NewBatch(
		navlog.Observation{ID: "F1", Price: 9876, AsOf: date.New(2024, 7, 1)},
		navlog.Observation{ID: "F2", Price: 12345, AsOf: date.New(2024, 6, 28)},
	)
	var w strings.Builder
	Summary(&w, b)

	want := "F1 → 9876円（基準日: 2024-07-01）\nF2 → 12345円（基準日: 2024-06-28）\n"
	if w.String() != want {
		t.Errorf("Summary() =\n%s\nwant\n%s", w.String(), want)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	tbl := navlog.NewTable()
	tbl.Merge(navlog.NewBatch(navlog.Observation{ID: "A", Price: 100, AsOf: date.New(2024, 1, 1)}), time.Date(2024, 1, 1, 20, 0, 0, 0, time.Local))
	tbl.Merge(navlog.NewBatch(navlog.Observation{ID: "B", Price: 9876, AsOf: date.New(2024, 1, 2)}), time.Date(2024, 1, 2, 20, 0, 0, 0, time.Local))

	got := HistoryMarkdown(tbl)
	if rows := tableRows(t, got); rows != 3 {
		t.Errorf("HistoryMarkdown() table has %d rows, want 3 (header + 2)", rows)
	}
	for _, want := range []string{"2024-01-01 20:00:00", "¥100 (2024-01-01)", "¥9,876 (2024-01-02)", "-"} {
		if !strings.Contains(got, want) {
			t.Errorf("HistoryMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdown_Empty(t *testing.T) {
	got := HistoryMarkdown(navlog.NewTable())
	if !strings.Contains(got, "No prices recorded yet.") {
		t.Errorf("HistoryMarkdown() = %q, want the empty message", got)
	}
}

func TestReturnsMarkdown(t *testing.T) {
	returns := []navlog.Return{
		{On: date.New(2024, 1, 5), Price: 10100, Previous: 10000, Change: decimal.RequireFromString("0.01")},
		{On: date.New(2024, 1, 9), Price: 9090, Previous: 10100, Change: decimal.RequireFromString("-0.1")},
	}
	got := ReturnsMarkdown("A", returns)
	if rows := tableRows(t, got); rows != 3 {
		t.Errorf("ReturnsMarkdown() table has %d rows, want 3 (header + 2)", rows)
	}
	for _, want := range []string{"Returns for A", "+1.00%", "-10.00%", "¥10,100"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReturnsMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		ratio string
		want  string
	}{
		{"0.0125", "+1.25%"},
		{"-0.0099009900990099", "-0.99%"},
		{"0", "-"},
		{"0.00001", "-"},
	}
	for _, tt := range tests {
		if got := Percent(decimal.RequireFromString(tt.ratio)); got != tt.want {
			t.Errorf("Percent(%s) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}
