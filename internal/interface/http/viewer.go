package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	viewerCookie    = "tenki_viewer"
	viewerCookieAge = 30 * 24 * 60 * 60
)

func viewerID(c *gin.Context) string {
	value, err := c.Cookie(viewerCookie)
	if err != nil {
		return ""
	}
	return value
}

func setViewerID(c *gin.Context, id uuid.UUID) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(viewerCookie, id.String(), viewerCookieAge, "/", "", false, true)
}
