package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=fetch.go -destination=mocks/mock_fetcher.go -package=mocks

// Fetcher retrieves puzzle inputs from adventofcode.com.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ErrNoSession is returned when no session cookie is configured.
var ErrNoSession = errors.New("no AoC session: set AOC_SESSION or write ~/keys/aoc.session")

// SessionFromEnv returns the session cookie from $AOC_SESSION, falling
// back to ~/keys/aoc.session.
func SessionFromEnv() (string, error) {
	if s := strings.TrimSpace(os.Getenv("AOC_SESSION")); s != "" {
		return s, nil
	}
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// HTTPFetcher fetches with the user's session cookie.
type HTTPFetcher struct {
	Client  *http.Client // nil means http.DefaultClient
	Session func() (string, error)
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	session, err := f.Session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := Or(f.Client, http.DefaultClient).Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// fileOrFetch returns the contents of filename, fetching url into it if
// the file does not exist yet.
func fileOrFetch(ctx context.Context, f Fetcher, filename, url string) ([]byte, error) {
	b, err := os.ReadFile(filename)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}
