package repository

import (
	"context"

	"github.com/fadilmartias/rozgar/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*Repository[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{NewRepository[model.User](db)}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.FindOne(ctx, Query{Where: map[string]any{"email": email}})
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	return r.FindOne(ctx, Query{Where: map[string]any{"google_id": googleID}})
}
