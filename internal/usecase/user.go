package usecase

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/recipes-api/internal/auth"
	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/repository"
)

type UserUsecase struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func (u *UserUsecase) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

type UpdateUserInput struct {
	Name     *string
	Password *string
}

// Update changes the caller's own name and/or password. Tokens issued
// before a password change stay valid until they expire.
func (u *UserUsecase) Update(ctx context.Context, userID int64, input UpdateUserInput) (*domain.User, error) {
	update := repository.UpdateUserInput{Name: input.Name}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	user, err := u.users.Update(ctx, userID, update)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
