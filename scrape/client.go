package scrape

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/etnz/navlog"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// Page is a fetched page, its body decoded to UTF-8.
type Page struct {
	URL      string
	Encoding string // name of the encoding the body was decoded from
	Body     []byte
}

// Client fetches pages.
type Client struct {
	http *http.Client
}

// NewClient returns a client. A zero timeout means no timeout besides the transport ones.
// When cached is true, successful responses are kept on disk for the day, in the
// navlog-cache folder of os.TempDir.
func NewClient(timeout time.Duration, cached bool) *Client {
	client := &http.Client{Timeout: timeout}
	if cached {
		client.Transport = newDiskCache(http.DefaultTransport, filepath.Join(os.TempDir(), "navlog-cache"))
	}
	return &Client{http: client}
}

// Page performs an HTTP GET and decodes the body to UTF-8.
// Failures, including non 2xx responses, are *navlog.NetworkError.
func (c *Client) Page(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &navlog.NetworkError{URL: url, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &navlog.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &navlog.NetworkError{URL: url, Status: resp.StatusCode}
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &navlog.NetworkError{URL: url, Status: resp.StatusCode, Err: err}
	}

	enc, name := detectEncoding(raw, resp.Header.Get("Content-Type"))
	body, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, &navlog.NetworkError{URL: url, Status: resp.StatusCode, Err: err}
	}
	return &Page{URL: url, Encoding: name, Body: body}, nil
}

// detectEncoding finds the encoding of an HTML body: BOM, Content-Type header and
// <meta> declarations first. When none of them is present, UTF-8 is preferred, then
// the Japanese legacy encodings, before falling back to windows-1252.
func detectEncoding(body []byte, contentType string) (encoding.Encoding, string) {
	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if certain || name != "windows-1252" {
		return enc, name
	}
	// windows-1252 is the html default when nothing is declared.
	if utf8.Valid(body) {
		return encoding.Nop, "utf-8"
	}
	for _, candidate := range []struct {
		enc  encoding.Encoding
		name string
	}{
		{japanese.ShiftJIS, "shift_jis"},
		{japanese.EUCJP, "euc-jp"},
	} {
		decoded, err := candidate.enc.NewDecoder().Bytes(body)
		if err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
			return candidate.enc, candidate.name
		}
	}
	return enc, name
}
