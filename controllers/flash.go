package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// flashAndRedirect parks a one-shot message in a cookie and sends the
// browser to a safe page. Every route-boundary failure ends this way;
// none crash the process.
func flashAndRedirect(c *gin.Context, message, location string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, false)
	c.Redirect(http.StatusFound, location)
}

// popFlash returns the pending flash message, if any, and clears it.
func popFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, false)
	return message
}
