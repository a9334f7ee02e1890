package testutils

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/api/handlers"
	"github.com/nextgencars/backend/internal/api/middleware"
	"github.com/nextgencars/backend/internal/api/routes"
	"github.com/nextgencars/backend/internal/config"
)

const testSecret = "test-secret"

// SetupRouter mounts the full route table with the production middleware
// chain and a fixed signing key.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	_ = config.LoadConfig()
	middleware.InitWithKey([]byte(testSecret))

	r := gin.New()
	r.Use(middleware.RequestID())
	routes.RegisterRoutes(r, h)
	return r
}

// BearerToken signs a token for the given role; call after SetupRouter.
func BearerToken(userID uint, role string) string {
	token, err := middleware.GenerateToken(userID, role, role, time.Hour)
	if err != nil {
		panic(err)
	}
	return "Bearer " + token
}
