package entities

import (
	"time"

	"gorm.io/gorm"
)

// SecurityEvent records an alarm or security-related occurrence on a device.
type SecurityEvent struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	EventType   string `gorm:"index" json:"event_type"`
	Description string `gorm:"type:text" json:"description"`
	DeviceID    uint   `gorm:"index" json:"device_id"`
	CreatedAt   string `json:"created_at"`
}

func (e *SecurityEvent) BeforeCreate(tx *gorm.DB) (err error) {
	e.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
