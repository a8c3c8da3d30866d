package widget

import (
	"bytes"
	"html/template"
	"strconv"
	"time"

	"github.com/yanqian/tenki/internal/domain/weather"
)

const (
	// FailureMessage replaces the current-weather region when a fetch fails.
	FailureMessage = "天気情報の取得に失敗しました。"
	// LoadingMessage is shown while a fetch is in flight.
	LoadingMessage = "読み込み中…"
)

var weekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

var regionTemplates = template.Must(template.New("regions").Funcs(template.FuncMap{
	"temp":     formatTemp,
	"describe": weather.Describe,
	"day":      formatDay,
}).Parse(`
{{define "current"}}<p class="temperature">{{temp .Temperature}} °C</p><p class="description">{{describe .WeatherCode false}}</p>{{end}}
{{define "weekly"}}{{range .}}<li class="day"><span class="date">{{day .Date}}</span><span class="icon">{{describe .WeatherCode true}}</span><span class="temp-max">{{temp .TempMax}}°C</span> / <span class="temp-min">{{temp .TempMin}}°C</span></li>{{end}}{{end}}
{{define "message"}}<p class="message">{{.}}</p>{{end}}
`))

// Renderer turns fetch results into region markup. Every call produces a
// complete Regions value; nothing from a previous render survives.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer returns a renderer backed by the built-in region templates.
func NewRenderer() *Renderer {
	return &Renderer{tmpl: regionTemplates}
}

// Loading renders the placeholder shown while loc is being fetched.
func (r *Renderer) Loading(loc weather.Location) Regions {
	return Regions{
		LocationName: loc.Name,
		Current:      r.execute("message", LoadingMessage),
	}
}

// Success renders a fetched report.
func (r *Renderer) Success(report weather.Report) Regions {
	return Regions{
		LocationName: report.Location.Name,
		Current:      r.execute("current", report.Current),
		Weekly:       r.execute("weekly", report.Daily),
	}
}

// Failure renders the fixed error message and clears the weekly region.
func (r *Renderer) Failure(loc weather.Location) Regions {
	return Regions{
		LocationName: loc.Name,
		Current:      r.execute("message", FailureMessage),
	}
}

func (r *Renderer) execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		// Static templates over plain values; only a broken template can get here.
		panic(err)
	}
	return template.HTML(buf.String())
}

// formatTemp prints v without trailing zeros; -0 prints as 0.
func formatTemp(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDay renders "2024-07-01" as "7/1(月)". Unparseable dates pass through.
func formatDay(date string) string {
	ts, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return strconv.Itoa(int(ts.Month())) + "/" + strconv.Itoa(ts.Day()) + "(" + weekdays[ts.Weekday()] + ")"
}
