package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"
)

// DefaultUserAgent is sent when no override is configured.
const DefaultUserAgent = "judol-checker/1.0"

// Config holds settings for the HTTP client.
type Config struct {
	Timeout   time.Duration
	UserAgent string
	Headers   http.Header
	Proxy     func(*http.Request) (*url.URL, error)
	Insecure  bool
}

// headerRoundTripper wraps a base RoundTripper to inject the configured
// headers and User-Agent into every outgoing request.
type headerRoundTripper struct {
	base      http.RoundTripper
	userAgent string
	headers   http.Header
}

func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if h.base == nil {
		h.base = http.DefaultTransport
	}
	r := req.Clone(req.Context())
	for k, vs := range h.headers {
		r.Header.Del(k)
		for _, v := range vs {
			r.Header.Add(k, v)
		}
	}
	if r.Header.Get("User-Agent") == "" {
		ua := h.userAgent
		if ua == "" {
			ua = DefaultUserAgent
		}
		r.Header.Set("User-Agent", ua)
	}
	return h.base.RoundTrip(r)
}

// New returns a configured HTTP client. Redirects are followed with the
// default policy; each request is issued exactly once, with no retries.
func New(cfg Config) *http.Client {
	transport := &http.Transport{
		Proxy:           cfg.Proxy,
		TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.Insecure},
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2: true,
	}

	return &http.Client{
		Transport: &headerRoundTripper{
			base:      transport,
			userAgent: cfg.UserAgent,
			headers:   cfg.Headers,
		},
		Timeout: cfg.Timeout,
	}
}
