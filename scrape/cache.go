package scrape

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"sync"

	"github.com/etnz/navlog/date"
)

// diskCache is an http.RoundTripper that keeps successful GET responses on disk
// for the day.
//
// Entries live in one folder per day under root, e.g. root/2024-07-01/<sha1 of url>.
// Folders of previous days are removed the first time the cache is used.
type diskCache struct {
	base  http.RoundTripper
	root  string
	today func() date.Date

	prune sync.Once
}

// newDiskCache returns a cache in root in front of base.
func newDiskCache(base http.RoundTripper, root string) *diskCache {
	return &diskCache{base: base, root: root, today: date.Today}
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	day := c.today().String()
	c.prune.Do(func() { c.removeOtherDays(day) })

	file := filepath.Join(c.root, day, fmt.Sprintf("%x", sha1.Sum([]byte(req.URL.String()))))
	if resp, err := c.read(file, req); err == nil {
		log.Printf("GET %v%v (cached)", req.URL.Host, req.URL.Path)
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("GET %v%v %v", req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.write(file, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// read returns the response stored in file.
func (c *diskCache) read(file string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// write stores resp in file. DumpResponse leaves resp with an in-memory copy of its body.
// The file is renamed into place so that a concurrent read never sees a partial entry.
func (c *diskCache) write(file string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(file), ".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), file)
}

// removeOtherDays deletes the folders of every day but day.
func (c *diskCache) removeOtherDays(day string) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return // nothing cached yet
	}
	for _, e := range entries {
		if !e.IsDir() || e.Name() == day {
			continue
		}
		if _, err := date.Parse(e.Name()); err != nil {
			continue // not ours
		}
		if err := os.RemoveAll(filepath.Join(c.root, e.Name())); err != nil {
			log.Printf("cache cleanup err (ignored): %v", err)
		}
	}
}
