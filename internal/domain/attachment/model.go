package attachment

import "time"

// Attachment is a file stored in object storage for a work order.
type Attachment struct {
	AttachmentID uint      `gorm:"primaryKey;column:attachment_id;autoIncrement" json:"attachment_id"`
	WorkOrderID  uint      `gorm:"not null;index" json:"work_order_id"`
	ObjectKey    string    `gorm:"size:300;not null;uniqueIndex" json:"-"`
	FileName     string    `gorm:"size:255;not null" json:"file_name"`
	ContentType  string    `gorm:"size:100" json:"content_type"`
	Size         int64     `json:"size"`
	UploadedBy   uint      `json:"uploaded_by"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	// URL is a short-lived download link, filled on read.
	URL string `gorm:"-" json:"url,omitempty"`
}

func (Attachment) TableName() string {
	return "work_order_attachments"
}
