package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/alpallel/Web-Judol-Attack-Checker/internal/model"
)

// Record is one per-URL entry in the JSON report.
type Record struct {
	URL        string
	OK         bool
	StatusCode int
	HasJudol   bool
	ExactJudol bool
	Length     int
	DurationMs int64
	Error      string
}

// MarshalJSON emits the success fields only for records that received a
// response, and the error field only for records that did not.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.OK {
		return json.Marshal(struct {
			URL        string `json:"url"`
			OK         bool   `json:"ok"`
			StatusCode int    `json:"status_code"`
			HasJudol   bool   `json:"has_judol"`
			ExactJudol bool   `json:"exact_judol"`
			Length     int    `json:"length"`
			DurationMs int64  `json:"duration_ms"`
		}{r.URL, r.OK, r.StatusCode, r.HasJudol, r.ExactJudol, r.Length, r.DurationMs})
	}
	return json.Marshal(struct {
		URL        string `json:"url"`
		OK         bool   `json:"ok"`
		DurationMs int64  `json:"duration_ms"`
		Error      string `json:"error"`
	}{r.URL, r.OK, r.DurationMs, r.Error})
}

// Report is the full JSON artifact for one run.
type Report struct {
	Sitemap string   `json:"sitemap"`
	Count   int      `json:"count"`
	Results []Record `json:"results"`
}

// Summary contains counters for the console output and HTML report.
type Summary struct {
	Total  int
	Hits   int
	Exact  int
	Errors int
}

// BuildRecord converts a model.Result into its report form.
func BuildRecord(res model.Result) Record {
	return Record{
		URL:        res.URL,
		OK:         res.OK,
		StatusCode: res.StatusCode,
		HasJudol:   res.HasJudol,
		ExactJudol: res.ExactJudol,
		Length:     res.Length,
		DurationMs: res.DurationMs,
		Error:      res.Error,
	}
}

// BuildReport assembles the report. Results keep the order the URLs were
// read from the sitemap; Count is derived, never supplied.
func BuildReport(sitemapPath string, results []model.Result) Report {
	records := make([]Record, len(results))
	for i, res := range results {
		records[i] = BuildRecord(res)
	}
	return Report{Sitemap: sitemapPath, Count: len(records), Results: records}
}

// BuildSummary derives high level counters from the results.
func BuildSummary(results []model.Result) Summary {
	sum := Summary{Total: len(results)}
	for _, res := range results {
		if res.HasJudol {
			sum.Hits++
		}
		if res.ExactJudol {
			sum.Exact++
		}
		if res.Error != "" {
			sum.Errors++
		}
	}
	return sum
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return bw.Flush()
}
