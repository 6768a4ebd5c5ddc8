package controller

import (
	"net"
	"net/http"
	"strings"

	"github.com/MukulParasar/PRODIGY-FS-02/logger"
	"github.com/MukulParasar/PRODIGY-FS-02/web/entity"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote
// address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonMsg sends a JSON response with a message and error status.
func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, msg, nil, err)
}

// jsonObj sends a JSON response with an object and error status.
func jsonObj(c *gin.Context, obj any, err error) {
	jsonMsgObj(c, "", obj, err)
}

// jsonMsgObj sends a success envelope, or a 500 with a generic message when
// err is set. Persistence details stay in the log, not the response.
func jsonMsgObj(c *gin.Context, msg string, obj any, err error) {
	if err != nil {
		logger.Warning(msg+" failed: ", err)
		c.JSON(http.StatusInternalServerError, entity.Msg{
			Success: false,
			Msg:     strings.TrimSpace(msg + " failed, please try again"),
		})
		return
	}
	c.JSON(http.StatusOK, entity.Msg{
		Success: true,
		Msg:     msg,
		Obj:     obj,
	})
}

// pureJsonMsg sends a pure JSON message response with a custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// validationMsg sends a 4xx response carrying per-field error messages.
func validationMsg(c *gin.Context, statusCode int, errs entity.FieldErrors) {
	c.JSON(statusCode, entity.ValidationMsg{
		Success: false,
		Msg:     "Invalid form data",
		Errors:  errs,
	})
}
