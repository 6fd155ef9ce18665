package repository

import (
	"context"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
}
