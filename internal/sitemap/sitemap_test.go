package sitemap_test

import (
	"strings"
	"testing"

	"github.com/alpallel/Web-Judol-Attack-Checker/internal/sitemap"
)

func TestParseURLSet(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/</loc><lastmod>2024-01-01</lastmod></url>
  <url><loc>
    https://example.com/about
  </loc></url>
  <url><loc></loc></url>
  <url><loc>https://example.com/</loc></url>
</urlset>`
	urls, err := sitemap.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []string{"https://example.com/", "https://example.com/about", "https://example.com/"}
	if len(urls) != len(want) {
		t.Fatalf("expected %d urls, got %d: %v", len(want), len(urls), urls)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Fatalf("urls[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestParseSitemapIndex(t *testing.T) {
	doc := `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>https://example.com/sitemap-posts.xml</loc></sitemap>
  <sitemap><loc>https://example.com/sitemap-pages.xml</loc></sitemap>
</sitemapindex>`
	urls, err := sitemap.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(urls) != 2 || urls[0] != "https://example.com/sitemap-posts.xml" {
		t.Fatalf("unexpected urls: %v", urls)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := sitemap.Parse(strings.NewReader("<urlset><url><loc>x</url>")); err == nil {
		t.Fatalf("expected error for malformed XML")
	}
}

func TestParseEmpty(t *testing.T) {
	urls, err := sitemap.Parse(strings.NewReader(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"></urlset>`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(urls) != 0 {
		t.Fatalf("expected no urls, got %v", urls)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := sitemap.ParseFile("does-not-exist.xml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
