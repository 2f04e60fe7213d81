package dto

import (
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/google/uuid"
)

const MinPasswordLength = 6

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignupRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return util.NewFormError("name, email and password are required", nil)
	}
	if len(r.Password) < MinPasswordLength {
		return util.NewFormError("Password must be at least 6 characters", nil)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if r.Email == "" || r.Password == "" {
		return util.NewFormError("email and password are required", nil)
	}
	return nil
}

type ForgotVerifyRequest struct {
	Email string `json:"email"`
}

func (r *ForgotVerifyRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if r.Email == "" {
		return util.NewFormError("email is required", nil)
	}
	return nil
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

func (r *ResetPasswordRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if r.Email == "" || r.NewPassword == "" {
		return util.NewFormError("email and newPassword are required", nil)
	}
	if len(r.NewPassword) < MinPasswordLength {
		return util.NewFormError("Password must be at least 6 characters", nil)
	}
	return nil
}

type AuthResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}
