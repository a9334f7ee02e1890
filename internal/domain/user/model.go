package user

import "time"

type User struct {
	UserID       uint      `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Role         Role      `gorm:"type:user_role;not null;default:'mechanic'" json:"role"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
