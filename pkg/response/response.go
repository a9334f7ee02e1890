package response

import (
	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/pkg/errcode"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string       `json:"error"`
	Code  errcode.Code `json:"code,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Fail writes err with the status its code maps to. Internal errors are
// logged and reported without their cause.
func Fail(c *gin.Context, err error) {
	code := errcode.CodeOf(err)
	msg := err.Error()
	if code == errcode.Internal {
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(errcode.HTTPStatus(code), ErrorResponse{Error: msg, Code: code})
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(c *gin.Context, msg string) {
	Fail(c, errcode.New(errcode.BadUserInput, "%s", msg))
}
