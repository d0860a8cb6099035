package linkfind

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"hlsgrab/internal/logging"
)

// Finder fetches a page and extracts manifest candidates from its body.
type Finder struct {
	client *http.Client
	logger *slog.Logger
}

// NewFinder constructs a Finder with the given fetch timeout.
func NewFinder(timeout time.Duration, logger *slog.Logger) *Finder {
	return &Finder{
		client: &http.Client{Timeout: timeout},
		logger: logging.NewComponentLogger(logger, "linkfind"),
	}
}

// Discover fetches pageURL and returns the manifest candidates found in the
// response body. The body is treated as raw text regardless of content type.
// Fetch failures are reported and degrade to an empty list; a malformed page
// URL aborts discovery because relative references cannot be resolved.
func (f *Finder) Discover(ctx context.Context, pageURL string) ([]string, error) {
	if _, _, err := splitPageURL(pageURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		f.logger.Warn("building page request failed", logging.String(logging.FieldPageURL, pageURL), logging.Error(err))
		return nil, nil
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("page fetch failed, nothing found", logging.String(logging.FieldPageURL, pageURL), logging.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Warn("reading page body failed, nothing found", logging.String(logging.FieldPageURL, pageURL), logging.Error(err))
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warn("page fetch returned non-success status, still scanning body",
			logging.String(logging.FieldPageURL, pageURL),
			logging.Int("status", resp.StatusCode))
	}

	links, err := Extract(string(body), pageURL)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		f.logger.Info("no manifest candidates found", logging.String(logging.FieldPageURL, pageURL))
	}
	return links, nil
}
