package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/metrics"
	"github.com/ErlanBelekov/recipes-api/internal/repository"
)

// ReportRenderer turns a recipe into a printable document.
type ReportRenderer interface {
	RecipePDF(recipe *domain.Recipe) ([]byte, error)
}

type RecipeUsecase struct {
	recipes    repository.RecipeRepository
	categories repository.CategoryRepository
	reports    ReportRenderer
}

func NewRecipeUsecase(recipes repository.RecipeRepository, categories repository.CategoryRepository, reports ReportRenderer) *RecipeUsecase {
	return &RecipeUsecase{recipes: recipes, categories: categories, reports: reports}
}

func (u *RecipeUsecase) List(ctx context.Context, userID int64) ([]*domain.Recipe, error) {
	recipes, err := u.recipes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

func (u *RecipeUsecase) Get(ctx context.Context, id, userID int64) (*domain.Recipe, error) {
	recipe, err := u.recipes.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return recipe, nil
}

type CreateRecipeInput struct {
	UserID          int64
	Name            string
	CategoryID      *int64
	PrepTimeMinutes *int64
	Servings        *int64
	Instructions    string
	Ingredients     *string
}

func (u *RecipeUsecase) Create(ctx context.Context, input CreateRecipeInput) (*domain.Recipe, error) {
	if input.CategoryID != nil {
		if err := u.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	name := input.Name
	recipe := &domain.Recipe{
		UserID:          input.UserID,
		CategoryID:      input.CategoryID,
		Name:            &name,
		PrepTimeMinutes: input.PrepTimeMinutes,
		Servings:        input.Servings,
		Instructions:    input.Instructions,
		Ingredients:     input.Ingredients,
	}

	created, err := u.recipes.Create(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return created, nil
}

// Update applies a partial change to one of the caller's recipes.
func (u *RecipeUsecase) Update(ctx context.Context, id, userID int64, input repository.UpdateRecipeInput) (*domain.Recipe, error) {
	if _, err := u.recipes.GetByID(ctx, id, userID); err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	if input.SetCategory && input.CategoryID != nil {
		if err := u.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, err := u.recipes.Update(ctx, id, userID, input)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return updated, nil
}

func (u *RecipeUsecase) Delete(ctx context.Context, id, userID int64) error {
	if err := u.recipes.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// Report renders one of the caller's recipes as a PDF.
func (u *RecipeUsecase) Report(ctx context.Context, id, userID int64) ([]byte, error) {
	recipe, err := u.recipes.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	start := time.Now()
	pdf, err := u.reports.RecipePDF(recipe)
	metrics.ReportRenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ReportsRenderedTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("render report: %w", err)
	}

	metrics.ReportsRenderedTotal.WithLabelValues("success").Inc()
	return pdf, nil
}

func (u *RecipeUsecase) ensureCategory(ctx context.Context, id int64) error {
	if _, err := u.categories.FindByID(ctx, id); err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	return nil
}
