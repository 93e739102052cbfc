package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"angertrack/internal/contextutil"
	"angertrack/internal/daydetail"
	"angertrack/internal/stats"
)

// DayPageHandler serves a day's entries and notes as an HTML page.
// Notes are rendered as markdown.
type DayPageHandler struct {
	resolver *daydetail.Resolver
	locale   stats.Locale
	loc      *time.Location
	parser   goldmark.Markdown
	template *template.Template
}

// dayPageData holds template data for rendered day pages.
type dayPageData struct {
	Title   string
	NoData  string
	Count   int
	Avg     float64
	Empty   bool
	Entries []dayPageEntry
	Notes   []dayPageNote
}

type dayPageEntry struct {
	Time      string
	Intensity int
}

type dayPageNote struct {
	Time    string
	Content template.HTML
}

// NewDayPageHandler creates a new handler for day pages.
func NewDayPageHandler(resolver *daydetail.Resolver, locale stats.Locale, loc *time.Location) *DayPageHandler {
	if loc == nil {
		loc = time.Local
	}

	tmpl := template.Must(template.New("day").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 720px;
      line-height: 1.6;
      background: #fff7f5;
      color: #1f2937;
    }
    h1 {
      margin-top: 0;
      color: #b91c1c;
    }
    .meta {
      color: #6b7280;
    }
    ul.entries {
      list-style: none;
      padding: 0;
    }
    ul.entries li {
      padding: 0.4rem 0;
      border-bottom: 1px solid #fde2e2;
    }
    article {
      background: #fff;
      border: 1px solid #fecaca;
      border-radius: 12px;
      padding: 1rem 1.25rem;
      margin-bottom: 1rem;
    }
    .time {
      color: #9ca3af;
      font-size: 0.9rem;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    {{if .Empty}}<p class="meta">{{.NoData}}</p>{{else}}<p class="meta">{{.Count}} · {{printf "%.2f" .Avg}}</p>{{end}}
  </header>
  {{if .Entries}}
  <ul class="entries">
    {{range .Entries}}<li><span class="time">{{.Time}}</span> · {{.Intensity}}/10</li>
    {{end}}
  </ul>
  {{end}}
  {{range .Notes}}
  <article>
    <div class="time">{{.Time}}</div>
    {{.Content}}
  </article>
  {{end}}
</body>
</html>`))

	return &DayPageHandler{
		resolver: resolver,
		locale:   locale,
		loc:      loc,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
		),
		template: tmpl,
	}
}

// ServeHTTP handles GET /days/{date}.
func (h *DayPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	date, err := h.resolver.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	detail, err := h.resolver.Resolve(ctx, date)
	if err != nil {
		logger.ErrorContext(ctx, "failed to resolve day", "date", date.Format(time.DateOnly), "error", err)
		http.Error(w, "failed to load day", http.StatusInternalServerError)
		return
	}

	pageData, err := h.pageData(detail)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render notes", "date", date.Format(time.DateOnly), "error", err)
		http.Error(w, "failed to render day", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.template.Execute(&buf, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute day template", "error", err)
		http.Error(w, "failed to render day", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (h *DayPageHandler) pageData(d daydetail.Detail) (dayPageData, error) {
	date := d.Date.In(h.loc)
	data := dayPageData{
		Title:  fmt.Sprintf("%d %s %d", date.Day(), h.locale.MonthName(date.Month()), date.Year()),
		NoData: h.locale.NoData,
		Count:  d.Count,
		Avg:    d.Avg,
		Empty:  d.Empty(),
	}

	for _, e := range d.Entries {
		data.Entries = append(data.Entries, dayPageEntry{
			Time:      e.Time(h.loc).Format("15:04"),
			Intensity: e.Intensity,
		})
	}

	for _, n := range d.Notes {
		html, err := h.renderMarkdown([]byte(n.Text))
		if err != nil {
			return dayPageData{}, err
		}
		data.Notes = append(data.Notes, dayPageNote{
			Time:    n.Time(h.loc).Format("15:04"),
			Content: template.HTML(html),
		})
	}
	return data, nil
}

// renderMarkdown converts note text to HTML. Raw HTML in notes is dropped.
func (h *DayPageHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
