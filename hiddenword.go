// Package hiddenword reveals the message hidden in an HTML coordinate
// table. The source document carries a table whose rows are
// (x, character, y) triples; the pipeline extracts the triples, paints
// each character onto a dense grid and renders the grid bottom-up as
// plain-text lines.
//
// Basic usage:
//
//	lines, err := hiddenword.FromURL(docURL).Lines(context.Background())
//	if err != nil {
//	    // handle error
//	}
//	for _, line := range lines {
//	    fmt.Println(line)
//	}
//
// With a cache and a custom client:
//
//	msg, err := hiddenword.FromURL(docURL).
//	    WithCache(cache.Memory()).
//	    WithClient(client).
//	    Message(ctx)
package hiddenword

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/EgbieAndersonUku1/render-hidden-word/cache"
	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
	"github.com/EgbieAndersonUku1/render-hidden-word/fetch"
	"github.com/EgbieAndersonUku1/render-hidden-word/grid"
	"github.com/EgbieAndersonUku1/render-hidden-word/htmltable"
)

// Revealer configures and runs the reveal pipeline: fetch, parse, locate
// table, validate, extract, build grid, paint, render. Create one with
// FromURL or FromReader, chain the With* options, then call a terminal
// operation. A Revealer built over a reader is single-use; a URL-backed
// one may run repeatedly and will re-fetch unless a cache is attached.
type Revealer struct {
	url    string
	source io.Reader
	client *http.Client
	store  cache.Store
	logger *slog.Logger
}

// FromURL returns a Revealer that fetches the document over HTTP.
func FromURL(url string) *Revealer {
	return &Revealer{url: url}
}

// FromReader returns a Revealer over already-fetched HTML.
func FromReader(r io.Reader) *Revealer {
	return &Revealer{source: r}
}

// WithCache attaches a byte store memoizing the fetched document, keyed
// by URL.
func (rv *Revealer) WithCache(store cache.Store) *Revealer {
	rv.store = store
	return rv
}

// WithClient sets the HTTP client used for fetching.
func (rv *Revealer) WithClient(client *http.Client) *Revealer {
	rv.client = client
	return rv
}

// WithLogger sets the logger; slog.Default is used otherwise.
func (rv *Revealer) WithLogger(logger *slog.Logger) *Revealer {
	rv.logger = logger
	return rv
}

// Grid runs the pipeline up to painting and returns the painted grid,
// for callers that want an export format other than text. The grid is
// sized rows = maxX, cols = maxX+1 from the extraction.
func (rv *Revealer) Grid(ctx context.Context) (*grid.Grid, error) {
	doc, err := rv.parse(ctx)
	if err != nil {
		return nil, err
	}

	table := htmltable.FindTable(doc)
	if table == nil {
		return nil, errkind.New(errkind.Value, "hiddenword.Grid", "document contains no <table> element")
	}

	ext, err := htmltable.Extract(table)
	if err != nil {
		return nil, err
	}
	rv.log().Debug("extracted coordinate records", "records", len(ext.Records), "max_x", ext.MaxX)

	g := grid.New(ext.MaxX, ext.MaxX+1)
	if err := g.Paint(ext.Records); err != nil {
		return nil, err
	}
	return g, nil
}

// Lines runs the full pipeline and returns the rendered text lines, top
// line first.
func (rv *Revealer) Lines(ctx context.Context) ([]string, error) {
	g, err := rv.Grid(ctx)
	if err != nil {
		return nil, err
	}
	return g.Render()
}

// Message returns the rendered lines joined with newlines.
func (rv *Revealer) Message(ctx context.Context) (string, error) {
	lines, err := rv.Lines(ctx)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// parse obtains the raw document and parses it into a node tree.
func (rv *Revealer) parse(ctx context.Context) (*html.Node, error) {
	var src io.Reader
	if rv.source != nil {
		src = rv.source
	} else {
		data, err := cache.GetOrFill(rv.store, rv.url, func() ([]byte, error) {
			return fetch.Get(ctx, rv.client, rv.url)
		})
		if err != nil {
			return nil, err
		}
		src = bytes.NewReader(data)
	}

	doc, err := html.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

func (rv *Revealer) log() *slog.Logger {
	if rv.logger != nil {
		return rv.logger
	}
	return slog.Default()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and
// tests where error handling would be cumbersome.
//
// Example:
//
//	msg := hiddenword.Must(hiddenword.FromURL(docURL).Message(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
