package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/nextgencars/backend/pkg/response"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/nextgencars/backend/pkg/utils"
)

// bindError turns binding failures into messages the front desk UI can show.
func bindError(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "invalid input: " + err.Error()
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, bindError(err))
		return false
	}
	return true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseIDParam(c, name)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// pageParams reads the optional skip and take query parameters.
func pageParams(c *gin.Context) (skip, take *int, ok bool) {
	skip, err := utils.ParseQueryIntParam(c, "skip")
	if err != nil {
		response.BadRequest(c, "skip must be an integer")
		return nil, nil, false
	}
	take, err = utils.ParseQueryIntParam(c, "take")
	if err != nil {
		response.BadRequest(c, "take must be an integer")
		return nil, nil, false
	}
	return skip, take, true
}

func claims(c *gin.Context) *types.Claims {
	return utils.GetClaims(c)
}
