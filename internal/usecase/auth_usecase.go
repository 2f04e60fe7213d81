package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/repository"
	"github.com/fadilmartias/rozgar/internal/service"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	users  UserStore
	tokens *service.TokenService
}

func NewAuthUsecase(users UserStore, tokens *service.TokenService) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

func (uc *AuthUsecase) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{Name: req.Name, Email: req.Email, PasswordHash: &hash}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return uc.session(user)
}

func (uc *AuthUsecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, notFound(err, ErrInvalidCredentials)
	}
	if user.PasswordHash == nil || *user.PasswordHash == "" {
		return nil, ErrNoLocalPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return uc.session(user)
}

// ForgotVerify only confirms that an account exists for the email.
func (uc *AuthUsecase) ForgotVerify(ctx context.Context, req dto.ForgotVerifyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	_, err := uc.users.FindByEmail(ctx, req.Email)
	return notFound(err, ErrEmailNotFound)
}

func (uc *AuthUsecase) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return notFound(err, ErrEmailNotFound)
	}
	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = &hash
	return uc.users.Update(ctx, user)
}

// GoogleLogin signs in with a Google profile, linking it to an existing
// account with the same email or creating a new one.
func (uc *AuthUsecase) GoogleLogin(ctx context.Context, profile *service.GoogleProfile) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByGoogleID(ctx, profile.ID)
	if err == nil {
		return uc.session(user)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	email := dto.NormalizeEmail(profile.Email)
	user, err = uc.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		user.GoogleID = &profile.ID
		if user.AvatarURL == nil && profile.AvatarURL != "" {
			user.AvatarURL = &profile.AvatarURL
		}
		if err := uc.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("link google account: %w", err)
		}
	case errors.Is(err, repository.ErrNotFound):
		name := profile.Name
		if name == "" {
			name = email
		}
		user = &model.User{Name: name, Email: email, GoogleID: &profile.ID, AvatarURL: optional(profile.AvatarURL)}
		if err := uc.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create google user: %w", err)
		}
	default:
		return nil, err
	}
	return uc.session(user)
}

func (uc *AuthUsecase) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, ErrInvalidCredentials)
	}
	return user, nil
}

func (uc *AuthUsecase) session(user *model.User) (*dto.AuthResponse, error) {
	token, err := uc.tokens.Issue(user.ID.String(), user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
