package dto

import (
	"strings"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/util"
)

type CreateJobRequest struct {
	Title         string        `json:"title"`
	Company       string        `json:"company"`
	Location      string        `json:"location"`
	Salary        string        `json:"salary"`
	Type          model.JobType `json:"type"`
	Description   string        `json:"description"`
	PostedByEmail string        `json:"postedByEmail"`
}

func (r *CreateJobRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Company = strings.TrimSpace(r.Company)
	r.Location = strings.TrimSpace(r.Location)
	if r.Title == "" || r.Company == "" || r.Location == "" || strings.TrimSpace(r.Description) == "" {
		return util.NewFormError("Missing required fields", nil)
	}
	if r.Type == "" {
		r.Type = model.JobFullTime
	}
	if !r.Type.Valid() {
		return util.NewFormError("invalid job type", map[string]string{"type": string(r.Type)})
	}
	return nil
}
