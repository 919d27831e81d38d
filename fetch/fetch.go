// Package fetch retrieves the raw HTML document that carries the
// coordinate table.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
)

// ValidURL reports whether raw is a well-formed absolute http or https
// URL with a host.
func ValidURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Get performs a single GET against rawURL and returns the response body
// decoded to UTF-8, honoring the charset the server declares. A nil
// client falls back to http.DefaultClient. There are no retries; any
// failure is terminal for the invocation.
func Get(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	const op = "fetch.Get"

	if strings.TrimSpace(rawURL) == "" {
		return nil, errkind.New(errkind.Value, op, "url must not be empty")
	}
	if !ValidURL(rawURL) {
		return nil, errkind.Newf(errkind.Value, op, "not a valid http(s) url: %q", rawURL)
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	slog.Debug("fetching document", "url", rawURL)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errkind.Newf(errkind.Value, op, "unexpected status %s for %q", resp.Status, rawURL)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	slog.Debug("fetched document", "url", rawURL, "bytes", len(data), "status", resp.Status)

	return data, nil
}
