package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/tenki/internal/domain/weather"
	"github.com/yanqian/tenki/pkg/util"
)

const (
	defaultBaseURL  = "https://api.open-meteo.com/v1/forecast"
	defaultTimezone = "Asia/Tokyo"
	defaultTimeout  = 10 * time.Second
	dailyFields     = "weathercode,temperature_2m_max,temperature_2m_min"
)

// Options controls which fields are requested from the forecast endpoint.
type Options struct {
	BaseURL  string
	Timezone string
	Daily    bool
	Timeout  time.Duration
}

// Client fetches forecasts from Open-Meteo.
type Client struct {
	opts       Options
	httpClient *http.Client
	now        util.Clock
}

// NewClient builds an API client.
func NewClient(opts Options) *Client {
	opts.BaseURL = strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(opts.Timezone) == "" {
		opts.Timezone = defaultTimezone
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Client{
		opts: opts,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		now: util.NowUTC,
	}
}

// BuildURL formats the forecast request for loc. Coordinates are passed
// through as-is.
func BuildURL(base string, loc weather.Location, opts Options) string {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	query.Set("current_weather", "true")
	if opts.Daily {
		query.Set("daily", dailyFields)
		query.Set("timezone", opts.Timezone)
	}
	return base + "?" + query.Encode()
}

// Fetch retrieves current weather, plus the daily forecast when enabled.
func (c *Client) Fetch(ctx context.Context, loc weather.Location) (weather.Report, error) {
	endpoint := BuildURL(c.opts.BaseURL, loc, c.opts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Report{}, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Report{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Report{}, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Report{}, fmt.Errorf("read forecast response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return weather.Report{}, fmt.Errorf("decode forecast response: %w", err)
	}
	if raw.Error {
		return weather.Report{}, fmt.Errorf("forecast api error: %s", raw.Reason)
	}

	report, err := normalize(raw, c.opts.Daily)
	if err != nil {
		return weather.Report{}, err
	}
	report.Location = loc
	report.Source = c.opts.BaseURL
	report.FetchedAt = c.now()
	return report, nil
}

type apiResponse struct {
	Error          bool            `json:"error"`
	Reason         string          `json:"reason"`
	CurrentWeather *currentWeather `json:"current_weather"`
	Daily          *daily          `json:"daily"`
}

type currentWeather struct {
	Temperature *float64 `json:"temperature"`
	WeatherCode *int     `json:"weathercode"`
}

type daily struct {
	Time        []string  `json:"time"`
	WeatherCode []int     `json:"weathercode"`
	TempMax     []float64 `json:"temperature_2m_max"`
	TempMin     []float64 `json:"temperature_2m_min"`
}

var (
	errMissingCurrent = errors.New("forecast response missing current_weather")
	errMissingDaily   = errors.New("forecast response missing daily")
)

func normalize(raw apiResponse, wantDaily bool) (weather.Report, error) {
	cw := raw.CurrentWeather
	if cw == nil || cw.Temperature == nil || cw.WeatherCode == nil {
		return weather.Report{}, errMissingCurrent
	}
	report := weather.Report{
		Current: weather.CurrentWeather{
			Temperature: *cw.Temperature,
			WeatherCode: *cw.WeatherCode,
		},
	}
	if !wantDaily {
		return report, nil
	}
	if raw.Daily == nil {
		return weather.Report{}, errMissingDaily
	}

	d := raw.Daily
	n := len(d.Time)
	if len(d.WeatherCode) != n || len(d.TempMax) != n || len(d.TempMin) != n {
		return weather.Report{}, fmt.Errorf("forecast daily arrays differ in length: time=%d weathercode=%d max=%d min=%d",
			n, len(d.WeatherCode), len(d.TempMax), len(d.TempMin))
	}
	report.Daily = make([]weather.DailyForecastEntry, 0, n)
	for i := 0; i < n; i++ {
		report.Daily = append(report.Daily, weather.DailyForecastEntry{
			Date:        d.Time[i],
			WeatherCode: d.WeatherCode[i],
			TempMax:     d.TempMax[i],
			TempMin:     d.TempMin[i],
		})
	}
	return report, nil
}
