package repository

import (
	"context"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
)

type CreateUserInput struct {
	Name         *string
	Login        string
	PasswordHash string
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Name         *string
	PasswordHash *string
}

type UserRepository interface {
	// Create returns domain.ErrLoginTaken when the login already exists.
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
}
