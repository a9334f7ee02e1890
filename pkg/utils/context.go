package utils

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/pkg/types"
)

const ClaimsKey = "claims"

// RequestMeta is what audit entries record about the HTTP caller.
type RequestMeta struct {
	RequestID string
	IP        string
	UserAgent string
}

type requestMetaKey struct{}

func WithRequestMeta(ctx context.Context, m RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, m)
}

func RequestMetaFrom(ctx context.Context) RequestMeta {
	m, _ := ctx.Value(requestMetaKey{}).(RequestMeta)
	return m
}

// GetClaims returns the verified claims, or nil for an anonymous request.
func GetClaims(c *gin.Context) *types.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*types.Claims)
	return claims
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims := GetClaims(c)
	if claims == nil {
		return 0, errors.New("user claims not found in context")
	}
	return claims.UserID, nil
}
