package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/etnz/navlog"
	"github.com/etnz/navlog/date"
)

// Fetcher retrieves a page. *Client is the production Fetcher.
type Fetcher interface {
	Page(ctx context.Context, url string) (*Page, error)
}

// Mode decides what a Collector does when a fund fails.
type Mode int

const (
	// Abort stops at the first failure and returns no observation at all.
	Abort Mode = iota
	// KeepGoing skips failing funds and returns the others along with the joined errors.
	KeepGoing
)

// Collector fetches every fund of the registry in order, one at a time.
type Collector struct {
	Fetcher  Fetcher
	Strategy date.YearStrategy
	Mode     Mode
	// Today returns the fetch day used to infer years. Defaults to date.Today.
	Today func() date.Date
}

// Collect fetches and extracts the observation of each instrument.
//
// In Abort mode any failure is returned alone, with a nil batch. In KeepGoing mode
// the batch holds every success and the error joins all failures.
func (c *Collector) Collect(ctx context.Context, instruments []navlog.Instrument) (*navlog.Batch, error) {
	today := date.Today()
	if c.Today != nil {
		today = c.Today()
	}

	batch := navlog.NewBatch()
	var errs error
	for _, inst := range instruments {
		if err := ctx.Err(); err != nil {
			if c.Mode == Abort {
				return nil, err
			}
			return batch, errors.Join(errs, err)
		}

		o, err := c.collect(ctx, inst, today)
		if err != nil {
			err = fmt.Errorf("fund %s: %w", inst.ID, err)
			if c.Mode == Abort {
				return nil, err
			}
			log.Printf("skipping: %v", err)
			errs = errors.Join(errs, err)
			continue
		}
		batch.Add(o)
	}
	return batch, errs
}

// collect fetches a single instrument.
func (c *Collector) collect(ctx context.Context, inst navlog.Instrument, today date.Date) (navlog.Observation, error) {
	page, err := c.Fetcher.Page(ctx, inst.URL)
	if err != nil {
		return navlog.Observation{}, err
	}
	text, err := Flatten(bytes.NewReader(page.Body))
	if err != nil {
		return navlog.Observation{}, err
	}
	price, on, err := Extract(text, inst.URL, today, c.Strategy)
	if err != nil {
		return navlog.Observation{}, fmt.Errorf("page decoded from %s: %w", page.Encoding, err)
	}
	return navlog.Observation{ID: inst.ID, Price: price, AsOf: on}, nil
}
