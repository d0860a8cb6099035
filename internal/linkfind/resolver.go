package linkfind

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedPageURL indicates the page URL has no extractable origin.
// Discovery cannot proceed without one, so callers propagate this error.
var ErrMalformedPageURL = errors.New("malformed page url")

// Resolve turns a possibly-relative manifest reference into an absolute URL.
//
// References that already carry an http(s) scheme are returned unchanged.
// Root-relative references join the page origin; path-relative references
// join the page URL's directory. Dot segments are left alone; the fetch
// layer deals with them.
func Resolve(reference, pageURL string) (string, error) {
	if strings.HasPrefix(reference, "http://") || strings.HasPrefix(reference, "https://") {
		return reference, nil
	}

	origin, dir, err := splitPageURL(pageURL)
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(reference, "/") {
		return origin + reference, nil
	}
	return origin + dir + reference, nil
}

// splitPageURL returns the origin (scheme://host) and the directory portion
// of the page URL's path, with a trailing slash.
func splitPageURL(pageURL string) (string, string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q: %v", ErrMalformedPageURL, pageURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedPageURL, pageURL)
	}

	origin := parsed.Scheme + "://" + parsed.Host

	dir := parsed.Path
	if idx := strings.LastIndex(dir, "/"); idx >= 0 {
		dir = dir[:idx+1]
	} else {
		dir = "/"
	}
	if dir == "" {
		dir = "/"
	}
	return origin, dir, nil
}
