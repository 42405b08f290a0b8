package scanner

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultKeywords are the stock gambling-spam markers.
var DefaultKeywords = []string{"judol", "gacor", "togel", "maxwin"}

// Scanner checks page bodies for a configurable set of marker keywords.
type Scanner struct {
	keywords []string
}

// New creates a Scanner. Keywords are trimmed, lower-cased and deduplicated;
// blanks are dropped.
func New(keywords []string) *Scanner {
	seen := make(map[string]struct{}, len(keywords))
	kws := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		kws = append(kws, kw)
	}
	return &Scanner{keywords: kws}
}

// Default returns a Scanner using DefaultKeywords.
func Default() *Scanner { return New(DefaultKeywords) }

// Keywords returns the active keyword set.
func (s *Scanner) Keywords() []string { return s.keywords }

// Scan reports whether body contains any keyword. has is true for any
// case-insensitive substring occurrence ("gacorific" counts for "gacor").
// exact is true only when some occurrence is bounded by non-alphanumeric
// characters or the body edges, a stronger signal of injected spam terms.
// exact implies has. An empty body yields false/false, and bodies with
// undecodable bytes are scanned as-is rather than rejected.
func (s *Scanner) Scan(body string) (has, exact bool) {
	if body == "" || len(s.keywords) == 0 {
		return false, false
	}
	lower := strings.ToLower(body)
	for _, kw := range s.keywords {
		for from := 0; ; {
			i := strings.Index(lower[from:], kw)
			if i < 0 {
				break
			}
			i += from
			has = true
			if isBoundary(lower, i-1) && isBoundary(lower, i+len(kw)) {
				return true, true
			}
			from = i + 1
		}
	}
	return has, false
}

// isBoundary reports whether position i is outside the body or holds a
// non-alphanumeric byte.
func isBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9')
}

// LoadKeywords reads a keyword list file, one keyword per line. Blank lines
// and lines starting with # are skipped.
func LoadKeywords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keyword file %q: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	var keywords []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read keyword file %q: %w", path, err)
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("keyword file %q contains no keywords", path)
	}
	return keywords, nil
}
