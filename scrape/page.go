// Package scrape reads fund reference prices from their public pages.
//
// A page is fetched (Client), flattened to a single line of text (Flatten) and then
// searched for the reference price and its as-of date (Extract). Collector chains
// the three for every fund of the registry.
package scrape

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Flatten parses an HTML document and returns its text content in document order,
// as a single line.
//
// Text from sibling elements is always separated by a space, so that
// "<td>基準価額</td><td>12,345円</td>" reads "基準価額 12,345円" where
// Selection.Text would read "基準価額12,345円". Runs of white space collapse to a
// single space. Scripts, styles and comments are not text.
func Flatten(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("cannot parse html: %w", err)
	}
	doc.Find("script,style,noscript,template").Remove()

	var b strings.Builder
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			n := c.Get(0)
			switch n.Type {
			case html.TextNode:
				b.WriteString(n.Data)
			case html.ElementNode:
				b.WriteByte(' ')
				walk(c)
				b.WriteByte(' ')
			}
		})
	}
	walk(doc.Selection)

	return collapse(b.String()), nil
}

// collapse replaces any run of white space with a single space and trims the ends.
// Unicode spaces count: &nbsp; and the ideographic space are common on Japanese pages.
func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }
