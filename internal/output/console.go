package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/alpallel/Web-Judol-Attack-Checker/internal/model"
)

// PrintSummary prints the run summary: totals first, then the matching URLs
// and any per-URL errors.
func PrintSummary(w io.Writer, sitemapPath string, results []model.Result) {
	sum := BuildSummary(results)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	fmt.Fprintf(w, "Sitemap: %s  URLs checked: %d\n", sitemapPath, sum.Total)
	if sum.Hits == 0 {
		_, _ = green.Fprintln(w, "No keyword hits found.")
	} else {
		_, _ = red.Fprintf(w, "Pages containing keywords: %d\n", sum.Hits)
		fmt.Fprintln(w, "\nMatches:")
		for _, res := range results {
			if res.HasJudol {
				fmt.Fprintf(w, " - %s (status=%d)\n", res.URL, res.StatusCode)
			}
		}
	}
	if sum.Exact > 0 {
		_, _ = red.Fprintln(w, "\nExact keyword hits (likely defacement):")
		for _, res := range results {
			if res.ExactJudol {
				fmt.Fprintf(w, " - %s\n", res.URL)
			}
		}
	}
	if sum.Errors > 0 {
		_, _ = yellow.Fprintf(w, "\nUnreachable: %d\n", sum.Errors)
		for _, res := range results {
			if res.Error != "" {
				fmt.Fprintf(w, " - %s: %s\n", res.URL, res.Error)
			}
		}
	}
}
