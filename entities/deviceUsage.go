package entities

import (
	"time"

	"gorm.io/gorm"
)

// DeviceUsage is one recorded session of a user operating a device.
// Start and end are RFC3339 strings; duration is the session length in seconds.
type DeviceUsage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DeviceID   uint   `gorm:"index" json:"device_id"`
	UserID     uint   `gorm:"index" json:"user_id"`
	UsageStart string `json:"usage_start"`
	UsageEnd   string `json:"usage_end"`
	Duration   int64  `json:"duration"`
	CreatedAt  string `json:"created_at"`
}

func (DeviceUsage) TableName() string { return "device_usage" }

func (u *DeviceUsage) BeforeCreate(tx *gorm.DB) (err error) {
	u.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
