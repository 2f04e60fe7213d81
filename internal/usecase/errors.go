package usecase

import (
	"errors"

	"github.com/fadilmartias/rozgar/internal/repository"
)

var (
	ErrTestNotFound         = errors.New("Test not found")
	ErrNoTestForJob         = errors.New("No test for this job")
	ErrResultNotFound       = errors.New("Result not found")
	ErrJobNotFound          = errors.New("Job not found")
	ErrApplicationNotFound  = errors.New("Application not found")
	ErrInterviewNotFound    = errors.New("Interview not found")
	ErrNoInterviewForJob    = errors.New("No interview scheduled for this job")
	ErrAlreadyApplied       = errors.New("You have already applied to this job")
	ErrEmailTaken           = errors.New("Email already registered")
	ErrEmailNotFound        = errors.New("Email not found")
	ErrInvalidCredentials   = errors.New("Invalid credentials")
	ErrNoLocalPassword      = errors.New("This account does not have a password set. Please sign in with Google or reset your password.")
	ErrEmbeddingUnavailable = errors.New("Similar job search is not configured")
)

// notFound maps the repository miss onto a caller-facing error.
func notFound(err error, as error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return as
	}
	return err
}
