package linkfind

import (
	"regexp"
	"strings"
)

// manifestPattern matches manifest-URL-shaped tokens: a run of
// non-whitespace, non-quote characters containing the .m3u8 extension,
// optionally followed by a query string. Backslashes stay in the match so
// JSON-escaped URLs ("https:\/\/cdn\/a.m3u8") are caught and cleaned after.
var manifestPattern = regexp.MustCompile(`[^"'\s<>]+\.m3u8[^"'\s<>]*`)

// Extract scans rawText for manifest references and resolves them against
// pageURL. The result is deduplicated by exact string equality with
// first-occurrence order preserved. Candidates differing only by query
// string stay distinct. An empty result is valid: it means the page had no
// candidates, not that extraction failed.
func Extract(rawText, pageURL string) ([]string, error) {
	matches := manifestPattern.FindAllString(rawText, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(matches))
	var links []string
	for _, match := range matches {
		cleaned := cleanToken(match)
		if cleaned == "" {
			continue
		}
		resolved, err := Resolve(cleaned, pageURL)
		if err != nil {
			return nil, err
		}
		// Resolution can glue a non-manifest path together; keep only
		// results that still look like a manifest.
		if !strings.Contains(resolved, ".m3u8") {
			continue
		}
		if _, dup := seen[resolved]; dup {
			continue
		}
		seen[resolved] = struct{}{}
		links = append(links, resolved)
	}
	return links, nil
}

// cleanToken strips surrounding quotes and string-escaping backslashes left
// over from the source text.
func cleanToken(token string) string {
	token = strings.Trim(token, `"'`)
	token = strings.ReplaceAll(token, `\`, "")
	return strings.TrimSpace(token)
}
