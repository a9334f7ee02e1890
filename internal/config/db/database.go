package db

import (
	"fmt"

	"github.com/nextgencars/backend/internal/config"
	"github.com/nextgencars/backend/internal/domain/attachment"
	"github.com/nextgencars/backend/internal/domain/audit"
	"github.com/nextgencars/backend/internal/domain/client"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

var enums = []string{
	`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'frontdesk', 'mechanic'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	`DO $$ BEGIN CREATE TYPE client_type AS ENUM ('PERSONAL', 'COMPANY'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	`DO $$ BEGIN CREATE TYPE work_order_status AS ENUM ('OPEN', 'IN_PROGRESS', 'ON_HOLD', 'CLOSED', 'CANCELED'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	`DO $$ BEGIN CREATE TYPE work_order_priority AS ENUM ('LOW', 'MEDIUM', 'HIGH', 'URGENT'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
}

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&client.Client{},
		&vehicle.Vehicle{},
		&workorder.WorkOrder{},
		&attachment.Attachment{},
		&audit.AuditLog{},
	}
}

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

// Init opens the connection into DB. It does not migrate.
func Init() error {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	zap.L().Info("database connected", zap.String("host", config.DbHost), zap.String("name", config.DbName))
	return nil
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate creates the enum types and then auto-migrates every model.
func Migrate(db *gorm.DB) error {
	for _, enum := range enums {
		if err := db.Exec(enum).Error; err != nil {
			return fmt.Errorf("create enum: %w", err)
		}
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	zap.L().Info("database migrated")
	return nil
}
