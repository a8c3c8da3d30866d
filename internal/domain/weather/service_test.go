package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/tenki/pkg/errors"
)

var testLocations = []Location{
	{ID: "tokyo", Name: "東京", Latitude: 35.6895, Longitude: 139.6917},
	{ID: "osaka", Name: "大阪", Latitude: 34.6937, Longitude: 135.5023},
}

func TestServiceReportSuccess(t *testing.T) {
	client := &stubForecastClient{report: Report{
		Current: CurrentWeather{Temperature: 21.5, WeatherCode: 3},
		Daily:   []DailyForecastEntry{{Date: "2024-07-01", WeatherCode: 0, TempMax: 30, TempMin: 22}},
		Source:  "https://example.com",
	}}
	svc := newTestService(client, "tokyo")

	report, err := svc.Report(context.Background(), Request{Location: "osaka"})
	require.NoError(t, err)
	require.Equal(t, "osaka", client.last.ID)
	require.Equal(t, testLocations[1], report.Location)
	require.Equal(t, 21.5, report.Current.Temperature)
	require.Len(t, report.Daily, 1)
}

func TestServiceReportDefaultsLocation(t *testing.T) {
	client := &stubForecastClient{}
	svc := newTestService(client, "osaka")

	_, err := svc.Report(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, "osaka", client.last.ID)
}

func TestServiceReportUnknownLocation(t *testing.T) {
	client := &stubForecastClient{}
	svc := newTestService(client, "tokyo")

	_, err := svc.Report(context.Background(), Request{Location: "atlantis"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Zero(t, client.calls)
}

func TestServiceReportFetchFailure(t *testing.T) {
	client := &stubForecastClient{err: errors.New("status=503")}
	svc := newTestService(client, "tokyo")

	_, err := svc.Report(context.Background(), Request{Location: "tokyo"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeForecastError))
}

func TestServiceDefaultFallsBackToFirst(t *testing.T) {
	svc := newTestService(&stubForecastClient{}, "missing")
	require.Equal(t, "tokyo", svc.Default().ID)
	require.Len(t, svc.Locations(), 2)
}

func TestToResponse(t *testing.T) {
	resp := ToResponse(Report{
		Location:  testLocations[0],
		Current:   CurrentWeather{Temperature: 21.5, WeatherCode: 3},
		Daily:     []DailyForecastEntry{{Date: "2024-07-01", WeatherCode: 61, TempMax: 25, TempMin: 19}},
		FetchedAt: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	})
	require.Equal(t, "曇り ☁️", resp.Current.Description)
	require.Equal(t, "🌧️", resp.Daily[0].Icon)
	require.Equal(t, "2024-07-01T09:00:00Z", resp.FetchedAt)
}

func newTestService(client ForecastClient, defaultID string) Service {
	return NewService(Config{Locations: testLocations, DefaultLocation: defaultID}, client, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubForecastClient struct {
	report Report
	err    error
	last   Location
	calls  int
}

func (s *stubForecastClient) Fetch(ctx context.Context, loc Location) (Report, error) {
	s.calls++
	s.last = loc
	if s.err != nil {
		return Report{}, s.err
	}
	return s.report, nil
}
