package repository

import (
	"context"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
)

// UpdateRecipeInput is a partial update. Nil pointers keep the stored value.
// The category is only touched when SetCategory is true; a nil CategoryID
// then clears it.
type UpdateRecipeInput struct {
	Name            *string
	SetCategory     bool
	CategoryID      *int64
	PrepTimeMinutes *int64
	Servings        *int64
	Instructions    *string
	Ingredients     *string
}

// RecipeRepository scopes every lookup by owner: a recipe that exists but
// belongs to someone else is reported as domain.ErrRecipeNotFound.
// Returned recipes carry their joined Category.
type RecipeRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Recipe, error)
	GetByID(ctx context.Context, id, userID int64) (*domain.Recipe, error)
	Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	Update(ctx context.Context, id, userID int64, in UpdateRecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, id, userID int64) error
}
