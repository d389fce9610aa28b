package entities

import (
	"time"

	"gorm.io/gorm"
)

// User represents a household account in the smart home system.
type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"index" json:"name"`
	Email     string  `gorm:"uniqueIndex;not null" json:"email"`
	Password  string  `json:"password"`
	HouseArea float64 `gorm:"not null" json:"house_area"`
	CreatedAt string  `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.CreatedAt = time.Now().Format(time.RFC3339)
	return
}

// UserHouseArea is the flat projection returned by the bulk house-area listing.
type UserHouseArea struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	HouseArea float64 `json:"house_area"`
}
