package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	t.Setenv("REDIS_DB", "x")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("MINIO_USE_SSL", "true")

	_ = LoadConfig()

	assert.Equal(t, 12*time.Hour, TokenTTL)
	assert.Equal(t, 0, RedisDB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, CORSOrigins)
	assert.True(t, MinioUseSSL)
	assert.Equal(t, 90, AuditRetentionDays)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DASHBOARD_CACHE_TTL", "2m")
	t.Setenv("AUDIT_RETENTION_DAYS", "7")

	_ = LoadConfig()

	assert.Equal(t, "s3cret", JwtSecret)
	assert.Equal(t, 2*time.Minute, DashboardCacheTTL)
	assert.Equal(t, 7, AuditRetentionDays)
}
