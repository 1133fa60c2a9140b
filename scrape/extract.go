package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/etnz/navlog"
	"github.com/etnz/navlog/date"
	"golang.org/x/text/width"
)

var (
	// 基準価額 12,345円
	priceRE = regexp.MustCompile(`基準価額\s*([\d,]+)\s*円`)
	// （3/15） or (3/15)
	dateRE = regexp.MustCompile(`[（(]\s*(\d{1,2})/(\d{1,2})\s*[）)]`)
)

// normalize folds fullwidth forms (digits, comma, slash, parentheses, ideographic
// space) to their ASCII counterparts, then collapses white space.
func normalize(text string) string { return collapse(width.Narrow.String(text)) }

// ExtractPrice finds the reference price in the flattened text of a page.
// url is for error messages only.
func ExtractPrice(text, url string) (navlog.Price, error) {
	m := priceRE.FindStringSubmatch(normalize(text))
	if m == nil {
		return 0, &navlog.ExtractionError{Field: "price", URL: url}
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
	if err != nil {
		return 0, &navlog.ExtractionError{Field: "price", URL: url, Err: err}
	}
	return navlog.Price(v), nil
}

// ExtractDate finds the as-of date in the flattened text of a page.
//
// Pages only publish the month and the day, the year is chosen by strategy relative
// to the fetch day. url is for error messages only.
func ExtractDate(text, url string, today date.Date, strategy date.YearStrategy) (date.Date, error) {
	m := dateRE.FindStringSubmatch(normalize(text))
	if m == nil {
		return date.Date{}, &navlog.ExtractionError{Field: "date", URL: url}
	}
	// The regexp guarantees one or two digits.
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	on, err := strategy.Infer(month, day, today)
	if err != nil {
		return date.Date{}, &navlog.ExtractionError{Field: "date", URL: url, Err: err}
	}
	return on, nil
}

// Extract finds both the reference price and its as-of date. They are searched
// independently, in any order, and both are required.
func Extract(text, url string, today date.Date, strategy date.YearStrategy) (navlog.Price, date.Date, error) {
	price, err := ExtractPrice(text, url)
	if err != nil {
		return 0, date.Date{}, err
	}
	on, err := ExtractDate(text, url, today, strategy)
	if err != nil {
		return 0, date.Date{}, err
	}
	return price, on, nil
}
