package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/alpallel/Web-Judol-Attack-Checker/internal/model"
	"github.com/alpallel/Web-Judol-Attack-Checker/internal/scanner"
)

// DefaultMaxBody caps how many response bytes are read and scanned per URL.
const DefaultMaxBody = 10 << 20

// Fetcher performs one GET per URL and scans the body for keywords.
type Fetcher struct {
	Client  *http.Client
	Scanner *scanner.Scanner
	MaxBody int64
}

// New creates a Fetcher with the default body cap.
func New(client *http.Client, sc *scanner.Scanner) *Fetcher {
	return &Fetcher{Client: client, Scanner: sc, MaxBody: DefaultMaxBody}
}

// Fetch issues a single GET request and classifies the outcome. Any received
// response counts as OK regardless of status code and its body is scanned;
// transport failures (DNS, connect, TLS, timeout, body read errors) and
// malformed URLs come back as OK=false with the cause in Error. There are no
// retries.
func (f *Fetcher) Fetch(ctx context.Context, target string) model.Result {
	res := model.Result{URL: target}
	start := time.Now()
	defer func() { res.DurationMs = time.Since(start).Milliseconds() }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer resp.Body.Close()

	body, err := f.readBody(resp)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.OK = true
	res.StatusCode = resp.StatusCode
	res.Length = len(body)
	res.HasJudol, res.ExactJudol = f.Scanner.Scan(body)
	return res
}

// readBody decodes the response body to UTF-8 using the declared or sniffed
// charset, up to the configured cap. Unknown charsets and invalid byte
// sequences degrade to replacement characters rather than errors, so binary
// content is scanned leniently instead of failing the URL.
func (f *Fetcher) readBody(resp *http.Response) (string, error) {
	maxBody := f.MaxBody
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	limited := io.LimitReader(resp.Body, maxBody)
	r, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
