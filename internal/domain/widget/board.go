package widget

import (
	"context"
	"log/slog"
	"sync"

	"github.com/yanqian/tenki/internal/domain/weather"
)

// Forecaster is the slice of weather.Service a board needs.
type Forecaster interface {
	Resolve(id string) (weather.Location, error)
	Report(ctx context.Context, req weather.Request) (weather.Report, error)
}

// Board holds the rendered regions for one viewer. Only the most recently
// started selection may commit its result; older in-flight fetches are
// cancelled and their results dropped.
type Board struct {
	mu         sync.Mutex
	forecaster Forecaster
	renderer   *Renderer
	logger     *slog.Logger

	generation uint64
	cancel     context.CancelFunc
	snapshot   Snapshot
}

// NewBoard returns an idle board.
func NewBoard(forecaster Forecaster, renderer *Renderer, logger *slog.Logger) *Board {
	return &Board{
		forecaster: forecaster,
		renderer:   renderer,
		logger:     logger,
		snapshot:   Snapshot{State: StateIdle},
	}
}

// Snapshot returns the regions as they currently stand.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot
}

// Select starts a fetch for locationID and blocks until it settles. The
// returned snapshot is the board state afterwards, which belongs to a newer
// selection when this one was superseded.
func (b *Board) Select(ctx context.Context, locationID string) (Snapshot, error) {
	loc, err := b.forecaster.Resolve(locationID)
	if err != nil {
		return b.Snapshot(), err
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
	}
	b.generation++
	gen := b.generation
	b.cancel = cancel
	prev := b.snapshot
	b.snapshot = Snapshot{
		State:      StateLoading,
		Generation: gen,
		LocationID: loc.ID,
		Regions:    b.renderer.Loading(loc),
	}
	b.mu.Unlock()

	report, fetchErr := b.forecaster.Report(fetchCtx, weather.Request{Location: loc.ID})

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		b.logger.Debug("discarding superseded forecast", "location", loc.ID, "generation", gen, "current", b.generation)
		return b.snapshot, nil
	}
	b.cancel = nil

	if fetchCtx.Err() != nil {
		// The caller went away; the upstream result says nothing about the forecast.
		b.logger.Info("forecast fetch abandoned by caller", "location", loc.ID, "generation", gen)
		b.snapshot = restored(prev, gen)
		return b.snapshot, nil
	}

	if fetchErr != nil {
		b.logger.Error("forecast fetch failed", "location", loc.ID, "generation", gen, "error", fetchErr)
		b.snapshot = Snapshot{
			State:      StateFailure,
			Generation: gen,
			LocationID: loc.ID,
			Regions:    b.renderer.Failure(loc),
		}
		return b.snapshot, nil
	}

	b.snapshot = Snapshot{
		State:      StateSuccess,
		Generation: gen,
		LocationID: loc.ID,
		Regions:    b.renderer.Success(report),
	}
	return b.snapshot, nil
}

// restored is the state to fall back to when a fetch is abandoned. A
// loading snapshot has no fetch behind it any more, so it becomes idle.
func restored(prev Snapshot, gen uint64) Snapshot {
	if prev.State == StateLoading {
		return Snapshot{State: StateIdle, Generation: gen}
	}
	prev.Generation = gen
	return prev
}

// Close cancels any in-flight fetch.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}
