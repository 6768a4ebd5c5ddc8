// Package controller provides the HTTP request handlers of the employee
// records panel: authentication and employee CRUD endpoints.
package controller

import (
	"net/http"

	"github.com/MukulParasar/PRODIGY-FS-02/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers, including
// authentication checks.
type BaseController struct{}

// checkLogin is a middleware that rejects requests without a live session.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "Session expired, please log in again")
		c.Abort()
	} else {
		c.Next()
	}
}
