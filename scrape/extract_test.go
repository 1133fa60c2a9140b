package scrape

import (
	"errors"
	"testing"

	"github.com/etnz/navlog"
	"github.com/etnz/navlog/date"
)

const testURL = "https://example.com/fund"

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		text string
		want navlog.Price
	}{
		{text: "基準価額 12,345円", want: 12345},
		{text: "... 基準価額12345 円 前日比 +12円", want: 12345},
		{text: "基準価額 1,234,567円", want: 1234567},
		{text: "基準価額 ９，８７６円", want: 9876},
		{text: "純資産 100円 基準価額 987円", want: 987},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ExtractPrice(tt.text, testURL)
			if err != nil {
				t.Fatalf("ExtractPrice(%q) failed: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ExtractPrice(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPrice_Missing(t *testing.T) {
	for _, text := range []string{"", "純資産総額 12,345円", "基準価額 --円", "基準価額 ,円"} {
		t.Run(text, func(t *testing.T) {
			_, err := ExtractPrice(text, testURL)
			var ee *navlog.ExtractionError
			if !errors.As(err, &ee) {
				t.Fatalf("ExtractPrice(%q) error = %v, want *navlog.ExtractionError", text, err)
			}
			if ee.Field != "price" || ee.URL != testURL {
				t.Errorf("ExtractionError = %+v, want field price and url %q", ee, testURL)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	today := date.New(2024, 5, 10)
	tests := []struct {
		text string
		want date.Date
	}{
		{text: "基準日（3/15）", want: date.New(2024, 3, 15)},
		{text: "(03/05)", want: date.New(2024, 3, 5)},
		{text: "（ 12/1 ）", want: date.New(2024, 12, 1)},
		{text: "（５/９）", want: date.New(2024, 5, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ExtractDate(tt.text, testURL, today, date.CurrentYear)
			if err != nil {
				t.Fatalf("ExtractDate(%q) failed: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ExtractDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDate_Strategy(t *testing.T) {
	today := date.New(2025, 1, 3)
	text := "基準価額 10,000円 （12/30）"

	got, err := ExtractDate(text, testURL, today, date.CurrentYear)
	if err != nil || got != date.New(2025, 12, 30) {
		t.Errorf("ExtractDate(CurrentYear) = %v, %v want 2025-12-30", got, err)
	}
	got, err = ExtractDate(text, testURL, today, date.MostRecent)
	if err != nil || got != date.New(2024, 12, 30) {
		t.Errorf("ExtractDate(MostRecent) = %v, %v want 2024-12-30", got, err)
	}
}

func TestExtractDate_Errors(t *testing.T) {
	today := date.New(2024, 5, 10)
	for _, text := range []string{"", "基準価額 12,345円", "3/15", "（2024/3/15）", "（13/40）"} {
		t.Run(text, func(t *testing.T) {
			_, err := ExtractDate(text, testURL, today, date.CurrentYear)
			var ee *navlog.ExtractionError
			if !errors.As(err, &ee) {
				t.Fatalf("ExtractDate(%q) error = %v, want *navlog.ExtractionError", text, err)
			}
			if ee.Field != "date" {
				t.Errorf("ExtractionError.Field = %q, want date", ee.Field)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	today := date.New(2024, 7, 2)
	// Order in the page does not matter.
	price, on, err := Extract("（7/1） ... 基準価額 9,876円 ...", testURL, today, date.CurrentYear)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if price != 9876 || on != date.New(2024, 7, 1) {
		t.Errorf("Extract() = %v, %v want 9876, 2024-07-01", price, on)
	}

	// Both are required.
	_, _, err = Extract("基準価額 9,876円", testURL, today, date.CurrentYear)
	var ee *navlog.ExtractionError
	if !errors.As(err, &ee) || ee.Field != "date" {
		t.Errorf("Extract() without date error = %v, want a date ExtractionError", err)
	}
	_, _, err = Extract("（7/1）", testURL, today, date.CurrentYear)
	if !errors.As(err, &ee) || ee.Field != "price" {
		t.Errorf("Extract() without price error = %v, want a price ExtractionError", err)
	}
}
