package weather

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/tenki/pkg/errors"
)

// Service exposes forecast lookups for the configured locations.
type Service interface {
	Locations() []Location
	Default() Location
	Resolve(id string) (Location, error)
	Report(ctx context.Context, req Request) (Report, error)
}

// ForecastClient fetches a report for a single location.
type ForecastClient interface {
	Fetch(ctx context.Context, loc Location) (Report, error)
}

type service struct {
	locations []Location
	byID      map[string]Location
	fallback  Location
	client    ForecastClient
	logger    *slog.Logger
}

// NewService wires up the weather domain.
func NewService(cfg Config, client ForecastClient, logger *slog.Logger) Service {
	byID := make(map[string]Location, len(cfg.Locations))
	for _, loc := range cfg.Locations {
		byID[loc.ID] = loc
	}
	fallback, ok := byID[cfg.DefaultLocation]
	if !ok && len(cfg.Locations) > 0 {
		fallback = cfg.Locations[0]
	}
	return &service{
		locations: append([]Location(nil), cfg.Locations...),
		byID:      byID,
		fallback:  fallback,
		client:    client,
		logger:    logger.With("component", "weather.service"),
	}
}

func (s *service) Locations() []Location {
	return append([]Location(nil), s.locations...)
}

func (s *service) Default() Location {
	return s.fallback
}

func (s *service) Resolve(id string) (Location, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return s.fallback, nil
	}
	loc, ok := s.byID[trimmed]
	if !ok {
		return Location{}, apperrors.Wrap(apperrors.CodeInvalidInput, "unknown location "+trimmed, nil)
	}
	return loc, nil
}

func (s *service) Report(ctx context.Context, req Request) (Report, error) {
	loc, err := s.Resolve(req.Location)
	if err != nil {
		return Report{}, err
	}

	report, err := s.client.Fetch(ctx, loc)
	if err != nil {
		return Report{}, apperrors.Wrap(apperrors.CodeForecastError, "failed to fetch forecast", err)
	}
	report.Location = loc
	s.logger.Info("forecast fetched", "location", loc.ID, "daily", len(report.Daily))
	return report, nil
}

// ToResponse converts a report into its API shape with translated codes.
func ToResponse(report Report) Response {
	daily := make([]DailyView, 0, len(report.Daily))
	for _, day := range report.Daily {
		daily = append(daily, DailyView{DailyForecastEntry: day, Icon: Describe(day.WeatherCode, true)})
	}
	fetchedAt := ""
	if !report.FetchedAt.IsZero() {
		fetchedAt = report.FetchedAt.Format(time.RFC3339)
	}
	return Response{
		Location: report.Location,
		Current: CurrentView{
			CurrentWeather: report.Current,
			Description:    Describe(report.Current.WeatherCode, false),
		},
		Daily:     daily,
		Source:    report.Source,
		FetchedAt: fetchedAt,
	}
}
