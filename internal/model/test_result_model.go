package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TestResult is one scored attempt. Rows are written once and never updated.
type TestResult struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"_id"`
	JobID     string            `gorm:"type:text;not null;index" json:"jobId"`
	TestID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"testId"`
	UserID    string            `gorm:"not null;index" json:"userId"`
	Score     int               `gorm:"not null" json:"score"`
	Total     int               `gorm:"not null" json:"total"`
	TimeTaken int               `gorm:"not null" json:"timeTaken"`
	Answers   datatypes.JSONMap `gorm:"type:jsonb" json:"answers"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (r *TestResult) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
