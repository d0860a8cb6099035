package linkfind

import (
	"errors"
	"testing"
)

func TestResolveIdentityForAbsoluteReferences(t *testing.T) {
	refs := []string{
		"https://cdn.example.com/videos/a.m3u8",
		"http://media.example.org/live.m3u8?token=abc",
	}
	for _, ref := range refs {
		resolved, err := Resolve(ref, "https://other.example.net/page.html")
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", ref, err)
		}
		if resolved != ref {
			t.Fatalf("Resolve(%q) = %q, want identity", ref, resolved)
		}
	}
}

func TestResolveRootRelative(t *testing.T) {
	resolved, err := Resolve("/videos/a.m3u8", "https://cdn.example.com/list/index.html")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if resolved != "https://cdn.example.com/videos/a.m3u8" {
		t.Fatalf("got %q", resolved)
	}
}

func TestResolvePathRelative(t *testing.T) {
	resolved, err := Resolve("b.m3u8", "https://cdn.example.com/list/index.html")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if resolved != "https://cdn.example.com/list/b.m3u8" {
		t.Fatalf("got %q", resolved)
	}
}

func TestResolvePathRelativeAtOriginRoot(t *testing.T) {
	resolved, err := Resolve("stream.m3u8", "https://cdn.example.com")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if resolved != "https://cdn.example.com/stream.m3u8" {
		t.Fatalf("got %q", resolved)
	}
}

func TestResolveKeepsDotSegments(t *testing.T) {
	resolved, err := Resolve("../alt/c.m3u8", "https://cdn.example.com/list/index.html")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if resolved != "https://cdn.example.com/list/../alt/c.m3u8" {
		t.Fatalf("dot segments must not be normalized, got %q", resolved)
	}
}

func TestResolveMalformedPageURL(t *testing.T) {
	for _, pageURL := range []string{"", "not a url", "ftp://cdn.example.com/x", "https://"} {
		_, err := Resolve("b.m3u8", pageURL)
		if !errors.Is(err, ErrMalformedPageURL) {
			t.Fatalf("Resolve with page URL %q: expected ErrMalformedPageURL, got %v", pageURL, err)
		}
	}
}
