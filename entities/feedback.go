package entities

import (
	"time"

	"gorm.io/gorm"
)

type Feedback struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"index" json:"user_id"`
	FeedbackText string `gorm:"type:text" json:"feedback_text"`
	CreatedAt    string `json:"created_at"`
}

// TableName keeps the singular table name used by the rest of the schema tooling.
func (Feedback) TableName() string { return "feedback" }

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	f.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
