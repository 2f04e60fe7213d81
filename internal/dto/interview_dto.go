package dto

import (
	"github.com/fadilmartias/rozgar/internal/util"
)

type CreateInterviewRequest struct {
	JobID       string `json:"jobId"`
	CompanyID   string `json:"companyId"`
	Title       string `json:"title"`
	ScheduledAt string `json:"scheduledAt"`
	Location    string `json:"location"`
	MeetingLink string `json:"meetingLink"`
}

func (r *CreateInterviewRequest) Validate() error {
	if r.JobID == "" || r.CompanyID == "" || r.Title == "" || r.ScheduledAt == "" {
		return util.NewFormError("jobId, companyId, title, scheduledAt required", nil)
	}
	return nil
}

type ScheduleInterviewRequest struct {
	CreateInterviewRequest
	CandidateEmail string `json:"candidateEmail"`
	Mode           string `json:"mode"`
}

func (r *ScheduleInterviewRequest) Validate() error {
	r.CandidateEmail = NormalizeEmail(r.CandidateEmail)
	if r.JobID == "" || r.CompanyID == "" || r.CandidateEmail == "" || r.Title == "" || r.ScheduledAt == "" {
		return util.NewFormError("jobId, companyId, candidateEmail, title, scheduledAt required", nil)
	}
	return nil
}

// InterviewDecisionRequest accepts or rejects the interview for a job.
type InterviewDecisionRequest struct {
	JobID  string `json:"jobId"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

func (r *InterviewDecisionRequest) Validate() error {
	if r.JobID == "" || (r.UserID == "" && r.Email == "") {
		return util.NewFormError("jobId and user identity required", nil)
	}
	return nil
}
