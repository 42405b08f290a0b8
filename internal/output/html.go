package output

import (
	"html/template"
	"io"
	"time"
)

// PageData provides the full context for the HTML report.
type PageData struct {
	Title       string
	GeneratedAt time.Time
	Sitemap     string
	Summary     Summary
	Results     []Record
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"formatTime": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
}).Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root { color-scheme: light dark; }
body { font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; margin: 24px; background:#fafafa; color:#111; }
h1 { font-size: 26px; margin: 0 0 8px; }
.meta { color:#6b7280; font-size:12px; }
.section { border:1px solid #e5e7eb; border-radius:16px; padding:16px 20px; margin-bottom:18px; background:#fff; }
.summary-grid { display:grid; gap:12px; grid-template-columns: repeat(auto-fit,minmax(160px,1fr)); }
.summary-card { padding:12px; border-radius:12px; border:1px solid #cbd5f5; background:linear-gradient(180deg,#eef2ff,#fff); }
.summary-card .badge { float:right; padding:2px 10px; border-radius:999px; background:#4f46e5; color:#fff; font-size:12px; }
.table { width:100%; border-collapse:collapse; font-size:14px; }
.table th, .table td { border-bottom:1px solid #e5e7eb; padding:6px 8px; text-align:left; }
.table th { background:#f9fafb; }
.url { font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace; font-size:13px; }
.hit { color:#b91c1c; font-weight:600; }
.err { color:#92400e; }
@media (prefers-color-scheme: dark) {
        body { background:#0f172a; color:#e2e8f0; }
        .section { background:#1e293b; border-color:#334155; }
        .summary-card { background:linear-gradient(180deg,#312e81,#1e293b); border-color:#4338ca; color:#e0e7ff; }
        .table th { background:#1e293b; }
}
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p class="meta">Sitemap {{.Sitemap}} &middot; Generated at {{formatTime .GeneratedAt}}</p>
</header>
<section class="section">
  <h2>Summary</h2>
  <div class="summary-grid">
    <div class="summary-card"><strong>URLs checked</strong><span class="badge">{{.Summary.Total}}</span></div>
    <div class="summary-card"><strong>Keyword hits</strong><span class="badge">{{.Summary.Hits}}</span></div>
    <div class="summary-card"><strong>Exact hits</strong><span class="badge">{{.Summary.Exact}}</span></div>
    <div class="summary-card"><strong>Unreachable</strong><span class="badge">{{.Summary.Errors}}</span></div>
  </div>
</section>
<section class="section">
  <h2>Results</h2>
  <table class="table">
    <thead>
      <tr><th>URL</th><th>Status</th><th>Hit</th><th>Exact</th><th>Bytes</th><th>Time (ms)</th><th>Error</th></tr>
    </thead>
    <tbody>
    {{range .Results}}
      <tr>
        <td class="url">{{.URL}}</td>
        {{if .OK}}
        <td>{{.StatusCode}}</td>
        <td>{{if .HasJudol}}<span class="hit">yes</span>{{else}}no{{end}}</td>
        <td>{{if .ExactJudol}}<span class="hit">yes</span>{{else}}no{{end}}</td>
        <td>{{.Length}}</td>
        <td>{{.DurationMs}}</td>
        <td></td>
        {{else}}
        <td>-</td><td>-</td><td>-</td><td>-</td>
        <td>{{.DurationMs}}</td>
        <td class="err">{{.Error}}</td>
        {{end}}
      </tr>
    {{end}}
    </tbody>
  </table>
</section>
<footer class="meta">Report generated at {{formatTime .GeneratedAt}}</footer>
</body>
</html>
`))

// RenderHTML renders the HTML report using the provided data.
func RenderHTML(w io.Writer, data PageData) error {
	return htmlTemplate.Execute(w, data)
}
