package widget

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/tenki/internal/domain/weather"
)

var tokyo = weather.Location{ID: "tokyo", Name: "東京", Latitude: 35.6895, Longitude: 139.6917}

func weekOf(codes ...int) []weather.DailyForecastEntry {
	days := make([]weather.DailyForecastEntry, 0, len(codes))
	for i, code := range codes {
		days = append(days, weather.DailyForecastEntry{
			Date:        "2024-07-0" + string(rune('1'+i)),
			WeatherCode: code,
			TempMax:     float64(30 + i),
			TempMin:     float64(20 + i),
		})
	}
	return days
}

func TestRendererSuccessCurrent(t *testing.T) {
	regions := NewRenderer().Success(weather.Report{
		Location: tokyo,
		Current:  weather.CurrentWeather{Temperature: 21.5, WeatherCode: 3},
	})

	require.Equal(t, "東京", regions.LocationName)
	require.Contains(t, string(regions.Current), "21.5")
	require.Contains(t, string(regions.Current), "曇り ☁️")
	require.Empty(t, regions.Weekly)
}

func TestRendererWeeklyBlocksInOrder(t *testing.T) {
	days := weekOf(0, 1, 2, 3, 61, 80, 95)
	regions := NewRenderer().Success(weather.Report{Location: tokyo, Daily: days})

	weekly := string(regions.Weekly)
	require.Equal(t, 7, strings.Count(weekly, `<li class="day">`))

	last := -1
	for _, day := range days {
		block := `<span class="icon">` + weather.Describe(day.WeatherCode, true) + `</span>`
		require.Contains(t, weekly, block)
		require.Contains(t, weekly, formatTemp(day.TempMax)+"°C")
		require.Contains(t, weekly, formatTemp(day.TempMin)+"°C")

		idx := strings.Index(weekly, formatDay(day.Date))
		require.Greater(t, idx, last, "day %s out of order", day.Date)
		last = idx
	}
	require.NotContains(t, weekly, "晴れ", "weekly region uses icon-only translation")
}

func TestRendererFailure(t *testing.T) {
	regions := NewRenderer().Failure(tokyo)
	require.Contains(t, string(regions.Current), FailureMessage)
	require.Empty(t, regions.Weekly)
	require.Equal(t, "東京", regions.LocationName)
}

func TestRendererLoading(t *testing.T) {
	regions := NewRenderer().Loading(tokyo)
	require.Contains(t, string(regions.Current), LoadingMessage)
	require.Empty(t, regions.Weekly)
}

func TestRendererEscapesDynamicText(t *testing.T) {
	regions := NewRenderer().Success(weather.Report{
		Location: tokyo,
		Daily:    []weather.DailyForecastEntry{{Date: "<script>", WeatherCode: 0}},
	})
	require.NotContains(t, string(regions.Weekly), "<script>")
}

func TestFormatDay(t *testing.T) {
	require.Equal(t, "7/1(月)", formatDay("2024-07-01"))
	require.Equal(t, "12/25(水)", formatDay("2024-12-25"))
	require.Equal(t, "someday", formatDay("someday"))
}

func TestFormatTemp(t *testing.T) {
	require.Equal(t, "21.5", formatTemp(21.5))
	require.Equal(t, "21", formatTemp(21))
	require.Equal(t, "-3.2", formatTemp(-3.2))
	require.Equal(t, "0", formatTemp(math.Copysign(0, -1)))
}
