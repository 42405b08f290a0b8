package runner

import (
	"context"
	"sync"
	"time"

	"github.com/alpallel/Web-Judol-Attack-Checker/internal/model"
)

// Config holds settings for the runner.
type Config struct {
	Workers   int
	RateLimit int // requests per second, 0 = unlimited
}

// Fetcher resolves a single URL into a result.
type Fetcher interface {
	Fetch(ctx context.Context, url string) model.Result
}

// Runner coordinates concurrent checks.
type Runner struct {
	cfg     Config
	fetcher Fetcher
}

// New creates a new Runner.
func New(cfg Config, f Fetcher) *Runner {
	return &Runner{cfg: cfg, fetcher: f}
}

// Run processes urls and returns exactly one result per URL, in input
// order. A fixed pool of Workers goroutines pulls from a shared job channel,
// so each URL is claimed exactly once and one slow URL only occupies one
// worker for at most the client timeout. On context cancellation in-flight
// requests abort and unclaimed URLs are filled in as canceled, keeping the
// one-record-per-URL invariant.
func (r *Runner) Run(ctx context.Context, urls []string) []model.Result {
	out := make([]model.Result, len(urls))
	filled := make([]bool, len(urls))
	mu := &sync.Mutex{}

	var rateCh <-chan time.Time
	if r.cfg.RateLimit > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.cfg.RateLimit))
		defer ticker.Stop()
		rateCh = ticker.C
	}

	workers := r.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(urls) {
		workers = len(urls)
	}

	type job struct {
		idx int
		url string
	}

	jobs := make(chan job)
	wg := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jb := range jobs {
				if rateCh != nil {
					select {
					case <-ctx.Done():
						return
					case <-rateCh:
					}
				}
				res := r.fetcher.Fetch(ctx, jb.url)
				mu.Lock()
				out[jb.idx] = res
				filled[jb.idx] = true
				mu.Unlock()
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, u := range urls {
			select {
			case jobs <- job{idx: i, url: u}:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()

	// Only reachable after cancellation.
	for i := range out {
		if !filled[i] {
			out[i] = model.Result{URL: urls[i], Error: "canceled"}
		}
	}
	return out
}
