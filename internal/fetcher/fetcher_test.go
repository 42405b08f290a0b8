package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alpallel/Web-Judol-Attack-Checker/internal/fetcher"
	"github.com/alpallel/Web-Judol-Attack-Checker/internal/httpclient"
	"github.com/alpallel/Web-Judol-Attack-Checker/internal/scanner"
)

func setupServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/clean", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>nothing to see</body></html>"))
	})
	mux.HandleFunc("/hit", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("daftar situs GACOR terpercaya"))
	})
	mux.HandleFunc("/embedded", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("try gacorific today"))
	})
	mux.HandleFunc("/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found, but togel inside"))
	})
	mux.HandleFunc("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/hit", http.StatusFound)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte("too late"))
	})
	mux.HandleFunc("/big", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 4096)))
	})
	return httptest.NewServer(mux)
}

func newFetcher(timeout time.Duration) *fetcher.Fetcher {
	client := httpclient.New(httpclient.Config{Timeout: timeout})
	return fetcher.New(client, scanner.Default())
}

func TestFetchCleanPage(t *testing.T) {
	srv := setupServer()
	defer srv.Close()

	res := newFetcher(5*time.Second).Fetch(context.Background(), srv.URL+"/clean")
	if !res.OK {
		t.Fatalf("expected ok, got error %q", res.Error)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if res.HasJudol || res.ExactJudol {
		t.Fatalf("clean page must not match keywords")
	}
	if res.Length == 0 {
		t.Fatalf("expected non-zero body length")
	}
}

func TestFetchKeywordFlags(t *testing.T) {
	srv := setupServer()
	defer srv.Close()
	f := newFetcher(5 * time.Second)

	hit := f.Fetch(context.Background(), srv.URL+"/hit")
	if !hit.OK || !hit.HasJudol || !hit.ExactJudol {
		t.Fatalf("expected exact hit, got %+v", hit)
	}

	embedded := f.Fetch(context.Background(), srv.URL+"/embedded")
	if !embedded.OK || !embedded.HasJudol || embedded.ExactJudol {
		t.Fatalf("expected substring-only hit, got %+v", embedded)
	}
}

func TestFetchErrorStatusStillScanned(t *testing.T) {
	srv := setupServer()
	defer srv.Close()

	res := newFetcher(5*time.Second).Fetch(context.Background(), srv.URL+"/404")
	if !res.OK {
		t.Fatalf("HTTP error status must still be ok, got error %q", res.Error)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	if !res.HasJudol {
		t.Fatalf("expected keyword hit in 404 body")
	}
}

func TestFetchFollowsRedirects(t *testing.T) {
	srv := setupServer()
	defer srv.Close()

	res := newFetcher(5*time.Second).Fetch(context.Background(), srv.URL+"/redirect")
	if !res.OK || res.StatusCode != http.StatusOK || !res.HasJudol {
		t.Fatalf("expected redirect to be followed to the hit page, got %+v", res)
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := setupServer()
	defer srv.Close()

	res := newFetcher(100*time.Millisecond).Fetch(context.Background(), srv.URL+"/slow")
	if res.OK {
		t.Fatalf("expected timeout failure")
	}
	if res.Error == "" {
		t.Fatalf("expected non-empty error message")
	}
}

func TestFetchMalformedURL(t *testing.T) {
	res := newFetcher(time.Second).Fetch(context.Background(), "://not-a-url")
	if res.OK || res.Error == "" {
		t.Fatalf("expected malformed URL to be reported as error, got %+v", res)
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := setupServer()
	srv.Close() // port is no longer listening

	res := newFetcher(time.Second).Fetch(context.Background(), srv.URL+"/clean")
	if res.OK || res.Error == "" {
		t.Fatalf("expected connection failure, got %+v", res)
	}
}

func TestFetchBodyCap(t *testing.T) {
	srv := setupServer()
	defer srv.Close()

	f := newFetcher(5 * time.Second)
	f.MaxBody = 1024
	res := f.Fetch(context.Background(), srv.URL+"/big")
	if !res.OK {
		t.Fatalf("expected ok, got error %q", res.Error)
	}
	if res.Length != 1024 {
		t.Fatalf("expected capped length 1024, got %d", res.Length)
	}
}
