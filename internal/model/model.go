package model

// Result is the final outcome for a single checked URL. OK reports whether
// an HTTP response was received at all; an error status code (4xx/5xx) is
// still OK. Only transport failures (DNS, connect, TLS, timeout) and
// malformed URLs set Error.
type Result struct {
	URL        string
	OK         bool
	StatusCode int
	HasJudol   bool
	ExactJudol bool
	Length     int
	DurationMs int64
	Error      string
}
