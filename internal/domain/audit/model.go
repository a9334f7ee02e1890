package audit

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	Action       string         `gorm:"size:50;not null" json:"action"`
	ResourceType string         `gorm:"size:50;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:100;not null" json:"resource_id"`
	OldData      datatypes.JSON `gorm:"type:jsonb" json:"old_data,omitempty" swaggertype:"object"`
	NewData      datatypes.JSON `gorm:"type:jsonb" json:"new_data,omitempty" swaggertype:"object"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"type:text" json:"user_agent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// QueryParams filters the audit trail; zero values are ignored.
type QueryParams struct {
	UserID       *uint      `form:"user_id"`
	ResourceType *string    `form:"resource_type"`
	Action       *string    `form:"action"`
	StartTime    *time.Time `form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime      *time.Time `form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit        int        `form:"limit"`
	Offset       int        `form:"offset"`
}
