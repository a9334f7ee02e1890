package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret    string
	Issuer       string
	TokenTTL     time.Duration
	IsProduction bool

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	ServerPort  string
	CORSOrigins []string

	LogLevel  string
	LogFormat string

	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	DashboardCacheTTL time.Duration

	MqttBroker      string
	MqttClientID    string
	MqttTopicPrefix string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioRegion    string
	PresignTTL     time.Duration

	AuditRetentionDays int
)

// LoadConfig populates the package vars. The returned error only reports a
// missing or unreadable .env file; the environment is still read.
func LoadConfig() error {
	envErr := godotenv.Load()

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "nextgencars")
	TokenTTL = getDuration("TOKEN_TTL", 12*time.Hour)
	IsProduction = getBool("IS_PRODUCTION", false)

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "nextgencars")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	ServerPort = getEnv("SERVER_PORT", "8080")
	CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:3000"))

	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "console")

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getInt("REDIS_DB", 0)
	DashboardCacheTTL = getDuration("DASHBOARD_CACHE_TTL", 30*time.Second)

	MqttBroker = getEnv("MQTT_BROKER", "")
	MqttClientID = getEnv("MQTT_CLIENT_ID", "nextgencars-api")
	MqttTopicPrefix = getEnv("MQTT_TOPIC_PREFIX", "nextgencars")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "work-order-attachments")
	MinioUseSSL = getBool("MINIO_USE_SSL", false)
	MinioRegion = getEnv("MINIO_REGION", "")
	PresignTTL = getDuration("MINIO_PRESIGN_TTL", 15*time.Minute)

	AuditRetentionDays = getInt("AUDIT_RETENTION_DAYS", 90)

	return envErr
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
