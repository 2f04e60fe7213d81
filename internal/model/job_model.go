package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

const EmbeddingDimensions = 768

type JobType string

const (
	JobFullTime   JobType = "Full-time"
	JobPartTime   JobType = "Part-time"
	JobContract   JobType = "Contract"
	JobInternship JobType = "Internship"
	JobRemote     JobType = "Remote"
)

func (t JobType) Valid() bool {
	switch t {
	case JobFullTime, JobPartTime, JobContract, JobInternship, JobRemote:
		return true
	}
	return false
}

type Job struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"_id"`
	Title         string           `gorm:"not null" json:"title"`
	Company       string           `gorm:"not null" json:"company"`
	Location      string           `gorm:"not null" json:"location"`
	Salary        string           `json:"salary"`
	Type          JobType          `gorm:"type:varchar(20);not null" json:"type"`
	Description   string           `gorm:"type:text;not null" json:"description"`
	PostedByEmail string           `gorm:"index" json:"postedByEmail,omitempty"`
	Embedding     *pgvector.Vector `gorm:"type:vector(768)" json:"-"`
	CreatedAt     time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func (j *Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	ensureID(&j.ID)
	return nil
}
