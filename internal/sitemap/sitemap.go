package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// Parse extracts the text of every <loc> element from a sitemap document.
// It walks tokens instead of decoding into a struct so that namespaced
// sitemaps, plain ones and <sitemapindex> documents all work the same way.
// URL order follows document order.
func Parse(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var urls []string
	var loc strings.Builder
	inLoc := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse sitemap: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "loc" {
				inLoc = true
				loc.Reset()
			}
		case xml.CharData:
			if inLoc {
				loc.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "loc" {
				inLoc = false
				if u := strings.TrimSpace(loc.String()); u != "" {
					urls = append(urls, u)
				}
			}
		}
	}
	return urls, nil
}

// ParseFile reads and parses the sitemap at path.
func ParseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sitemap %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
