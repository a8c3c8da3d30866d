package widget

import (
	"html/template"
	"time"
)

// State is the lifecycle of one fetch cycle on a board.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// Region ids used in the page markup.
const (
	RegionLocationName = "location-name"
	RegionCurrent      = "weather-info"
	RegionWeekly       = "weekly-forecast"
)

// Regions holds the rendered content of the three output regions.
type Regions struct {
	LocationName string        `json:"locationName"`
	Current      template.HTML `json:"current"`
	Weekly       template.HTML `json:"weekly"`
}

// Snapshot is what a viewer currently sees.
type Snapshot struct {
	State      State   `json:"state"`
	Generation uint64  `json:"generation"`
	LocationID string  `json:"location"`
	Regions    Regions `json:"regions"`
}

// Config wires runtime dependencies for the widget domain.
type Config struct {
	IdleTTL time.Duration
}
