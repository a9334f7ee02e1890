package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/nextgencars/backend/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgresForIntegration starts a throwaway postgres, or connects to
// TEST_DB_DSN when set, and migrates the schema.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		sqlDB := mustConnect(dsn)
		return mustMigrate(sqlDB), func() { _ = sqlDB.Close() }
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "nextgencars",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/nextgencars?sslmode=disable", host, port.Port())
	sqlDB := mustConnect(dsn)
	gormDB := mustMigrate(sqlDB)

	cleanup := func() {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
	}
	return gormDB, cleanup
}

func mustConnect(dsn string) *sql.DB {
	var (
		sqlDB *sql.DB
		err   error
	)
	// retry db connect
	for i := 0; i < 10; i++ {
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = sqlDB.Ping(); err == nil {
				return sqlDB
			}
		}
		time.Sleep(time.Second)
	}
	log.Fatal(err)
	return nil
}

func mustMigrate(sqlDB *sql.DB) *gorm.DB {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	return gormDB
}
