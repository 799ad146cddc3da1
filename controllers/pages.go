package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The entry pages carry no markup of their own; they only surface the
// pending flash message so a client can render it.

func Index(c *gin.Context) {
	c.JSON(http.StatusOK, PageSchema{Page: "index", Flash: popFlash(c)})
}

func SignupPage(c *gin.Context) {
	c.JSON(http.StatusOK, PageSchema{Page: "signup", Flash: popFlash(c)})
}

func Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/index")
}
