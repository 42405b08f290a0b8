package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alpallel/Web-Judol-Attack-Checker/internal/banner"
	"github.com/alpallel/Web-Judol-Attack-Checker/internal/fetcher"
	"github.com/alpallel/Web-Judol-Attack-Checker/internal/httpclient"
	"github.com/alpallel/Web-Judol-Attack-Checker/internal/output"
	"github.com/alpallel/Web-Judol-Attack-Checker/internal/runner"
	"github.com/alpallel/Web-Judol-Attack-Checker/internal/scanner"
	"github.com/alpallel/Web-Judol-Attack-Checker/internal/sitemap"
)

type headerList []string

type options struct {
	sitemap     string
	outputJSON  string
	outputHTML  string
	keywords    string
	userAgent   string
	cookie      string
	headers     headerList
	proxy       string
	timeout     time.Duration
	concurrency int
	rateLimit   int
	maxBody     int64
	insecure    bool
	verbose     bool
	silent      bool
}

func main() {
	opts := parseFlags()
	if !opts.silent {
		banner.PrintBanner()
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "[-] Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.sitemap, "s", "sitemap.xml", "Path to sitemap.xml")
	flag.StringVar(&opts.outputJSON, "o", "judol_report.json", "Output JSON report file")
	flag.StringVar(&opts.outputHTML, "html", "", "HTML report output file")
	flag.StringVar(&opts.keywords, "keywords", "", "Keyword list file (one per line, overrides the defaults)")
	flag.StringVar(&opts.userAgent, "ua", httpclient.DefaultUserAgent, "User-Agent header")
	flag.StringVar(&opts.cookie, "cookie", "", "Cookie header")
	flag.Var(&opts.headers, "H", "Extra HTTP header (repeatable)")
	flag.StringVar(&opts.proxy, "proxy", "", "HTTP(S) proxy URL")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-request timeout")
	flag.IntVar(&opts.concurrency, "c", 10, "Number of concurrent requests")
	flag.IntVar(&opts.rateLimit, "rl", 0, "Global rate limit (requests per second)")
	flag.Int64Var(&opts.maxBody, "max-body", fetcher.DefaultMaxBody, "Max response bytes to read per URL")
	flag.BoolVar(&opts.insecure, "insecure", false, "Skip TLS verification")
	flag.BoolVar(&opts.verbose, "v", false, "Enable verbose output")
	flag.BoolVar(&opts.silent, "silent", false, "Suppress banner and summary")
	flag.Parse()
	return opts
}

func run(opts options) error {
	if opts.sitemap == "" {
		return errors.New("-s (sitemap path) is required")
	}
	if opts.concurrency <= 0 {
		return fmt.Errorf("-c must be greater than zero (got %d)", opts.concurrency)
	}
	if opts.rateLimit < 0 {
		return fmt.Errorf("-rl must be >= 0 (got %d)", opts.rateLimit)
	}
	if opts.timeout <= 0 {
		return fmt.Errorf("-timeout must be > 0 (got %s)", opts.timeout)
	}
	if opts.maxBody <= 0 {
		return fmt.Errorf("-max-body must be > 0 (got %d)", opts.maxBody)
	}

	urls, err := sitemap.ParseFile(opts.sitemap)
	if err != nil {
		return err
	}

	keywords := scanner.DefaultKeywords
	if opts.keywords != "" {
		keywords, err = scanner.LoadKeywords(opts.keywords)
		if err != nil {
			return err
		}
	}

	headerMap, err := toHeader(opts.headers)
	if err != nil {
		return err
	}
	if opts.cookie != "" {
		headerMap.Set("Cookie", opts.cookie)
	}

	var proxyFunc func(*http.Request) (*url.URL, error)
	if opts.proxy != "" {
		proxyURL, perr := url.Parse(opts.proxy)
		if perr != nil {
			return fmt.Errorf("invalid proxy URL: %w", perr)
		}
		proxyFunc = http.ProxyURL(proxyURL)
	}

	client := httpclient.New(httpclient.Config{
		Timeout:   opts.timeout,
		UserAgent: opts.userAgent,
		Headers:   headerMap,
		Proxy:     proxyFunc,
		Insecure:  opts.insecure,
	})

	f := fetcher.New(client, scanner.New(keywords))
	f.MaxBody = opts.maxBody
	runr := runner.New(runner.Config{Workers: opts.concurrency, RateLimit: opts.rateLimit}, f)

	if opts.verbose {
		fmt.Fprintf(os.Stderr, "[config] urls=%d concurrency=%d rate-limit=%d timeout=%s keywords=%d\n",
			len(urls), opts.concurrency, opts.rateLimit, opts.timeout, len(keywords))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := runr.Run(ctx, urls)
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "[-] Interrupted; writing partial report")
	}

	rep := output.BuildReport(opts.sitemap, results)
	if err := writeJSONFile(opts.outputJSON, rep, opts.verbose); err != nil {
		return err
	}
	if opts.outputHTML != "" {
		page := output.PageData{
			Title:       "Judol Checker Report",
			GeneratedAt: time.Now().UTC(),
			Sitemap:     opts.sitemap,
			Summary:     output.BuildSummary(results),
			Results:     rep.Results,
		}
		if err := writeHTMLFile(opts.outputHTML, page, opts.verbose); err != nil {
			return err
		}
	}

	if !opts.silent {
		output.PrintSummary(os.Stdout, opts.sitemap, results)
		fmt.Printf("\nFull report written to: %s\n", opts.outputJSON)
	}
	return nil
}

func toHeader(headers headerList) (http.Header, error) {
	hdr := make(http.Header)
	for _, h := range headers {
		parts := strings.SplitN(h, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid header %q (expected Key: Value)", h)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("invalid header %q (empty key)", h)
		}
		hdr.Add(key, value)
	}
	return hdr, nil
}

func writeJSONFile(path string, rep output.Report, verbose bool) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := output.WriteJSON(f, rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[write] JSON report -> %s\n", path)
	}
	return nil
}

func writeHTMLFile(path string, page output.PageData, verbose bool) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create HTML directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create HTML file: %w", err)
	}
	defer f.Close()
	if err := output.RenderHTML(f, page); err != nil {
		return fmt.Errorf("write HTML: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[write] HTML report -> %s\n", path)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (h *headerList) String() string {
	return strings.Join(*h, "; ")
}

func (h *headerList) Set(value string) error {
	*h = append(*h, value)
	return nil
}
