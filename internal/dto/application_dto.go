package dto

import (
	"strings"

	"github.com/fadilmartias/rozgar/internal/util"
)

type CreateApplicationRequest struct {
	JobID          string `json:"jobId"`
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	ApplicantID    string `json:"applicantId"`
	ApplicantEmail string `json:"applicantEmail"`
	ApplicantName  string `json:"applicantName"`
	Phone          string `json:"phone"`
	ResumeURL      string `json:"resumeUrl"`
	CoverLetter    string `json:"coverLetter"`
}

func (r *CreateApplicationRequest) Validate() error {
	r.ApplicantEmail = NormalizeEmail(r.ApplicantEmail)
	r.ApplicantName = strings.TrimSpace(r.ApplicantName)
	if r.JobID == "" || r.JobTitle == "" || r.Company == "" || r.ApplicantEmail == "" || r.ApplicantName == "" {
		return util.NewFormError("jobId, jobTitle, company, applicantEmail, applicantName required", nil)
	}
	return nil
}

type ApplicantCounts struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SplitIDs parses a comma separated id list, dropping blanks.
func SplitIDs(raw string) []string {
	var ids []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			ids = append(ids, s)
		}
	}
	return ids
}
