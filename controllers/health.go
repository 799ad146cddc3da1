package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyobegeorge57/falcon-finance/database"
)

// Health reports store reachability. This is the only route that
// distinguishes an unavailable store from other failures.
func (e *Env) Health(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), e.DB); err != nil {
		slog.Error("store unreachable", "error", err)
		c.String(http.StatusInternalServerError, "store unavailable: %s", err.Error())
		return
	}
	c.String(http.StatusOK, "OK")
}
