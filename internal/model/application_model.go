package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "Applied"
	ApplicationScreening ApplicationStatus = "Screening"
	ApplicationInterview ApplicationStatus = "Interview"
	ApplicationOffer     ApplicationStatus = "Offer"
	ApplicationRejected  ApplicationStatus = "Rejected"
)

// Application is unique per (job, applicant email).
type Application struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"_id"`
	JobID          string            `gorm:"type:text;not null;uniqueIndex:idx_application_job_email" json:"jobId"`
	JobTitle       string            `gorm:"not null" json:"jobTitle"`
	Company        string            `gorm:"not null" json:"company"`
	ApplicantID    *string           `json:"applicantId"`
	ApplicantEmail string            `gorm:"not null;uniqueIndex:idx_application_job_email" json:"applicantEmail"`
	ApplicantName  string            `gorm:"not null" json:"applicantName"`
	Phone          string            `json:"phone"`
	ResumeURL      string            `json:"resumeUrl"`
	ResumeText     string            `gorm:"type:text" json:"resumeText,omitempty"`
	CoverLetter    string            `gorm:"type:text" json:"coverLetter"`
	Status         ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	if a.Status == "" {
		a.Status = ApplicationApplied
	}
	return nil
}
