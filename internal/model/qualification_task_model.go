package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QualificationStatus string

const (
	QualificationPending     QualificationStatus = "pending"
	QualificationRunning     QualificationStatus = "running"
	QualificationAccepted    QualificationStatus = "accepted"
	QualificationNoInterview QualificationStatus = "no_interview"
	QualificationFailed      QualificationStatus = "failed"
)

// QualificationTask records the interview auto-accept attempt for a passing result.
// ResultID is unique so a result is qualified at most once.
type QualificationTask struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey" json:"_id"`
	ResultID    uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex" json:"resultId"`
	JobID       string              `gorm:"type:text;not null;index" json:"jobId"`
	UserID      string              `gorm:"not null" json:"userId"`
	Status      QualificationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Detail      string              `gorm:"type:text" json:"detail,omitempty"`
	AttemptedAt *time.Time          `json:"attemptedAt,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func (q *QualificationTask) BeforeCreate(tx *gorm.DB) error {
	ensureID(&q.ID)
	return nil
}
