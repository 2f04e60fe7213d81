package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is one multiple-choice item. AnswerIndex is zero-based into Options.
type Question struct {
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}

type Test struct {
	ID          uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"_id"`
	JobID       string                        `gorm:"type:text;not null;index" json:"jobId"`
	CompanyID   string                        `gorm:"type:text;not null;index" json:"companyId"`
	Title       string                        `gorm:"not null" json:"title"`
	Description string                        `gorm:"type:text" json:"description"`
	DurationSec int                           `gorm:"not null" json:"durationSec"`
	Questions   datatypes.JSONSlice[Question] `gorm:"type:jsonb" json:"questions"`
	IsActive    bool                          `gorm:"not null;index" json:"isActive"`
	CreatedAt   time.Time                     `json:"createdAt"`
	UpdatedAt   time.Time                     `json:"updatedAt"`
}

func (t *Test) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
