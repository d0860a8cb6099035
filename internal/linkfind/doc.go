// Package linkfind discovers HLS manifest links in raw page text.
//
// Extract scans arbitrary text for .m3u8-shaped tokens, cleans quoting and
// escape artifacts, resolves relative references against the page URL, and
// returns the unique candidates in first-occurrence order. Finder wraps the
// page fetch itself; network failures degrade to an empty candidate list
// rather than aborting discovery.
package linkfind
