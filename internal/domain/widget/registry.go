package widget

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/tenki/pkg/util"
)

const defaultIdleTTL = 30 * time.Minute

// Registry keeps one board per viewer and drops boards left idle past ttl.
type Registry struct {
	mu     sync.Mutex
	boards map[uuid.UUID]*registryEntry
	ttl    time.Duration
	now    util.Clock
	create func() *Board
}

type registryEntry struct {
	board    *Board
	lastSeen time.Time
}

// NewRegistry builds a registry that creates boards with create.
func NewRegistry(ttl time.Duration, create func() *Board) *Registry {
	if ttl <= 0 {
		ttl = defaultIdleTTL
	}
	return &Registry{
		boards: make(map[uuid.UUID]*registryEntry),
		ttl:    ttl,
		now:    util.NowUTC,
		create: create,
	}
}

// Acquire returns the board for viewer, creating one when viewer is empty,
// malformed, or unknown. The returned id is the one the caller should keep.
func (r *Registry) Acquire(viewer string) (uuid.UUID, *Board) {
	id, err := uuid.Parse(viewer)
	if err != nil {
		id = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.cleanupLocked(now)

	entry, ok := r.boards[id]
	if !ok {
		entry = &registryEntry{board: r.create()}
		r.boards[id] = entry
	}
	entry.lastSeen = now
	return id, entry.board
}

// Len reports how many boards are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}

func (r *Registry) cleanupLocked(now time.Time) {
	for id, entry := range r.boards {
		if now.Sub(entry.lastSeen) > r.ttl {
			entry.board.Close()
			delete(r.boards, id)
		}
	}
}
