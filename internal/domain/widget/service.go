package widget

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yanqian/tenki/internal/domain/weather"
)

// Service exposes per-viewer widget state.
type Service interface {
	// Open fetches afresh for the viewer's board: its last location, or
	// the default when the board has never been used.
	Open(ctx context.Context, viewer string) (uuid.UUID, Snapshot)
	// Select switches the viewer's board to locationID.
	Select(ctx context.Context, viewer, locationID string) (uuid.UUID, Snapshot, error)
	// Current returns the viewer's board without fetching.
	Current(viewer string) (uuid.UUID, Snapshot)
}

type service struct {
	weather  weather.Service
	registry *Registry
	logger   *slog.Logger
}

// NewService wires up the widget domain.
func NewService(cfg Config, weatherSvc weather.Service, logger *slog.Logger) Service {
	logger = logger.With("component", "widget.service")
	renderer := NewRenderer()
	boardLogger := logger.With("component", "widget.board")
	registry := NewRegistry(cfg.IdleTTL, func() *Board {
		return NewBoard(weatherSvc, renderer, boardLogger)
	})
	return &service{
		weather:  weatherSvc,
		registry: registry,
		logger:   logger,
	}
}

func (s *service) Open(ctx context.Context, viewer string) (uuid.UUID, Snapshot) {
	id, board := s.registry.Acquire(viewer)
	locationID := board.Snapshot().LocationID
	if locationID == "" {
		locationID = s.weather.Default().ID
	}
	snap, err := board.Select(ctx, locationID)
	if err != nil {
		s.logger.Error("location unusable on open", "viewer", id, "location", locationID, "error", err)
	}
	return id, snap
}

func (s *service) Select(ctx context.Context, viewer, locationID string) (uuid.UUID, Snapshot, error) {
	id, board := s.registry.Acquire(viewer)
	snap, err := board.Select(ctx, locationID)
	return id, snap, err
}

func (s *service) Current(viewer string) (uuid.UUID, Snapshot) {
	id, board := s.registry.Acquire(viewer)
	return id, board.Snapshot()
}
