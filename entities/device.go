package entities

import (
	"time"

	"gorm.io/gorm"
)

type Device struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"index" json:"name"`
	Type      string `json:"type"`
	OwnerID   uint   `gorm:"index" json:"owner_id"`
	CreatedAt string `json:"created_at"`
}

func (d *Device) BeforeCreate(tx *gorm.DB) (err error) {
	d.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
