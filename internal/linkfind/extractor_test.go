package linkfind

import (
	"errors"
	"reflect"
	"testing"
)

const pageURL = "https://cdn.example.com/list/index.html"

func TestExtractResolvesRelativeCandidates(t *testing.T) {
	raw := `<a href="/videos/a.m3u8">x</a><a href="b.m3u8">y</a>`
	links, err := Extract(raw, pageURL)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	want := []string{
		"https://cdn.example.com/videos/a.m3u8",
		"https://cdn.example.com/list/b.m3u8",
	}
	if !reflect.DeepEqual(links, want) {
		t.Fatalf("Extract = %v, want %v", links, want)
	}
}

func TestExtractDeduplicatesFirstOccurrenceOrder(t *testing.T) {
	raw := `
		source: "https://a.example.com/one.m3u8"
		fallback: "https://b.example.com/two.m3u8"
		retry: "https://a.example.com/one.m3u8"
	`
	links, err := Extract(raw, pageURL)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	want := []string{
		"https://a.example.com/one.m3u8",
		"https://b.example.com/two.m3u8",
	}
	if !reflect.DeepEqual(links, want) {
		t.Fatalf("Extract = %v, want %v", links, want)
	}
}

func TestExtractKeepsQueryVariantsDistinct(t *testing.T) {
	raw := `"https://cdn.example.com/v.m3u8?quality=hd" "https://cdn.example.com/v.m3u8?quality=sd"`
	links, err := Extract(raw, pageURL)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("query variants select distinct manifests, expected 2 links, got %v", links)
	}
}

func TestExtractCleansEscapedJSON(t *testing.T) {
	raw := `{"src":"https:\/\/cdn.example.com\/videos\/a.m3u8"}`
	links, err := Extract(raw, pageURL)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	want := []string{"https://cdn.example.com/videos/a.m3u8"}
	if !reflect.DeepEqual(links, want) {
		t.Fatalf("Extract = %v, want %v", links, want)
	}
}

func TestExtractEmptyPage(t *testing.T) {
	links, err := Extract("<html><body>nothing here</body></html>", pageURL)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("expected no candidates, got %v", links)
	}
}

func TestExtractMalformedPageURLPropagates(t *testing.T) {
	_, err := Extract(`<a href="b.m3u8">y</a>`, "not a url")
	if !errors.Is(err, ErrMalformedPageURL) {
		t.Fatalf("expected ErrMalformedPageURL, got %v", err)
	}
}
