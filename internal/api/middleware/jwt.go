package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nextgencars/backend/internal/config"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/nextgencars/backend/pkg/utils"
	"go.uber.org/zap"
)

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// InitWithKey sets the signing key directly.
func InitWithKey(key []byte) {
	jwtKey = key
}

// GenerateToken issues a signed HS256 token carrying the caller's role.
var GenerateToken = func(userID uint, username, role string, expireDuration time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func tokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// JWTAuthMiddleware attaches verified claims when a valid Bearer token or
// token cookie is present. Requests without one continue anonymously and
// the services reject them with UNAUTHENTICATED.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			zap.L().Debug("rejecting token", zap.String("request_id", c.GetString(RequestIDKey)), zap.Error(err))
			c.Next()
			return
		}

		c.Set(utils.ClaimsKey, claims)
		c.Next()
	}
}
