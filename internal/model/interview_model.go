package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "Scheduled"
	InterviewAccepted  InterviewStatus = "Accepted"
	InterviewCompleted InterviewStatus = "Completed"
	InterviewCancelled InterviewStatus = "Cancelled"
)

type Interview struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"_id"`
	JobID            string          `gorm:"type:text;not null;index" json:"jobId"`
	CompanyID        string          `gorm:"type:text;not null;index" json:"companyId"`
	CandidateEmail   *string         `gorm:"index" json:"candidateEmail"`
	Title            string          `gorm:"not null" json:"title"`
	ScheduledAt      string          `gorm:"not null" json:"scheduledAt"` // ISO datetime
	Location         string          `json:"location"`
	MeetingLink      string          `json:"meetingLink"`
	GoogleEventID    string          `json:"googleEventId"`
	GoogleAddURL     string          `gorm:"type:text" json:"googleAddUrl"`
	AcceptedByUserID *string         `json:"acceptedByUserId"`
	AcceptedByEmail  *string         `json:"acceptedByEmail"`
	Status           InterviewStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID)
	if i.Status == "" {
		i.Status = InterviewScheduled
	}
	return nil
}
