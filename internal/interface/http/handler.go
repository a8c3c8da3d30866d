package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/tenki/internal/domain/weather"
	"github.com/yanqian/tenki/internal/domain/widget"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	weatherSvc weather.Service
	widgetSvc  widget.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(weatherSvc weather.Service, widgetSvc widget.Service, logger *slog.Logger) *Handler {
	return &Handler{
		weatherSvc: weatherSvc,
		widgetSvc:  widgetSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

type pageData struct {
	Locations          []weather.Location
	Snapshot           widget.Snapshot
	FailureMessage     string
	RegionLocationName string
	RegionCurrent      string
	RegionWeekly       string
}

// Index renders the widget page. A location query parameter switches the
// viewer's board before rendering so the form works without scripts; an
// unknown one renders the board's usual location with a 400.
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	viewer := viewerID(c)

	status := http.StatusOK
	var (
		id   uuid.UUID
		snap widget.Snapshot
	)
	if loc := c.Query("location"); loc != "" {
		var err error
		id, snap, err = h.widgetSvc.Select(ctx, viewer, loc)
		if err != nil {
			h.logger.Warn("unknown location on page load", "location", loc, "error", err)
			status = http.StatusBadRequest
			id, snap = h.widgetSvc.Open(ctx, id.String())
		}
	} else {
		id, snap = h.widgetSvc.Open(ctx, viewer)
	}
	setViewerID(c, id)

	c.HTML(status, "index.html", pageData{
		Locations:          h.weatherSvc.Locations(),
		Snapshot:           snap,
		FailureMessage:     widget.FailureMessage,
		RegionLocationName: widget.RegionLocationName,
		RegionCurrent:      widget.RegionCurrent,
		RegionWeekly:       widget.RegionWeekly,
	})
}

// Widget returns the viewer's current regions without fetching.
func (h *Handler) Widget(c *gin.Context) {
	id, snap := h.widgetSvc.Current(viewerID(c))
	setViewerID(c, id)
	c.JSON(http.StatusOK, snap)
}

// SelectLocation switches the viewer's board and returns the new regions.
// Upstream failures still answer 200 with the failure regions.
func (h *Handler) SelectLocation(c *gin.Context) {
	var req weather.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	id, snap, err := h.widgetSvc.Select(c.Request.Context(), viewerID(c), req.Location)
	setViewerID(c, id)
	if err != nil {
		abortWithError(c, fromAppError(err, "widget_failed", errMessage(err)))
		return
	}

	c.JSON(http.StatusOK, snap)
}

// Weather returns the raw forecast for a location with translated codes.
func (h *Handler) Weather(c *gin.Context) {
	var req weather.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	report, err := h.weatherSvc.Report(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "weather_failed", widget.FailureMessage))
		return
	}

	c.JSON(http.StatusOK, weather.ToResponse(report))
}

// Locations lists the selectable locations.
func (h *Handler) Locations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"locations": h.weatherSvc.Locations(),
		"default":   h.weatherSvc.Default().ID,
	})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
