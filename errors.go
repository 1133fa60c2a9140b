package navlog

import (
	"fmt"
	"net/http"
)

// DataFormatError reports a registry file that is missing, unreadable or malformed.
type DataFormatError struct {
	Path string
	Err  error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("registry %q: %v", e.Path, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }

// ExtractionError reports a page where a field could not be found.
// Field is either "price" or "date".
type ExtractionError struct {
	Field string
	URL   string
	Err   error // optional cause, e.g. an impossible month/day.
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot extract %s from %s: %v", e.Field, e.URL, e.Err)
	}
	return fmt.Sprintf("cannot extract %s from %s", e.Field, e.URL)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// NetworkError reports a transport failure or a non 2xx response.
type NetworkError struct {
	URL    string
	Status int // 0 when the request did not complete.
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot http GET %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("cannot http GET %s: %d %s", e.URL, e.Status, http.StatusText(e.Status))
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StoreIOError reports a history file that exists but cannot be read, parsed or written.
type StoreIOError struct {
	Path string
	Err  error
}

func (e *StoreIOError) Error() string {
	return fmt.Sprintf("history %q: %v", e.Path, e.Err)
}

func (e *StoreIOError) Unwrap() error { return e.Err }
