package vehicle

import (
	"time"

	"github.com/nextgencars/backend/internal/domain/client"
)

// Vehicle is always owned by exactly one client.
type Vehicle struct {
	VehicleID    uint           `gorm:"primaryKey;column:vehicle_id;autoIncrement" json:"vehicle_id"`
	ClientID     uint           `gorm:"not null;index" json:"client_id"`
	Make         string         `gorm:"size:100;not null" json:"make"`
	Model        string         `gorm:"size:100;not null" json:"model"`
	Year         *int           `json:"year"`
	LicensePlate string         `gorm:"size:20;not null;index" json:"license_plate"`
	VIN          *string        `gorm:"column:vin;size:17" json:"vin"`
	HSN          *string        `gorm:"column:hsn;size:4" json:"hsn"`
	TSN          *string        `gorm:"column:tsn;size:3" json:"tsn"`
	FuelType     *string        `gorm:"size:30" json:"fuel_type"`
	Drive        *string        `gorm:"size:30" json:"drive"`
	Transmission *string        `gorm:"size:30" json:"transmission"`
	Km           *int           `json:"km"`
	Client       *client.Client `gorm:"foreignKey:ClientID;references:ClientID;constraint:OnDelete:CASCADE" json:"client,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
