package usecase_test

import (
	"context"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/repository"
)

// ---- fakes ----

type fakeUserRepo struct {
	create      func(ctx context.Context, in repository.CreateUserInput) (*domain.User, error)
	findByID    func(ctx context.Context, id int64) (*domain.User, error)
	findByLogin func(ctx context.Context, login string) (*domain.User, error)
	update      func(ctx context.Context, id int64, in repository.UpdateUserInput) (*domain.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, in repository.CreateUserInput) (*domain.User, error) {
	return r.create(ctx, in)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.findByLogin(ctx, login)
}

func (r *fakeUserRepo) Update(ctx context.Context, id int64, in repository.UpdateUserInput) (*domain.User, error) {
	return r.update(ctx, id, in)
}

type fakeCategoryRepo struct {
	list     func(ctx context.Context) ([]domain.Category, error)
	findByID func(ctx context.Context, id int64) (*domain.Category, error)
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	return r.list(ctx)
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.findByID(ctx, id)
}

type fakeRecipeRepo struct {
	listByUser func(ctx context.Context, userID int64) ([]*domain.Recipe, error)
	getByID    func(ctx context.Context, id, userID int64) (*domain.Recipe, error)
	create     func(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	update     func(ctx context.Context, id, userID int64, in repository.UpdateRecipeInput) (*domain.Recipe, error)
	delete     func(ctx context.Context, id, userID int64) error
}

func (r *fakeRecipeRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Recipe, error) {
	return r.listByUser(ctx, userID)
}

func (r *fakeRecipeRepo) GetByID(ctx context.Context, id, userID int64) (*domain.Recipe, error) {
	return r.getByID(ctx, id, userID)
}

func (r *fakeRecipeRepo) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	return r.create(ctx, recipe)
}

func (r *fakeRecipeRepo) Update(ctx context.Context, id, userID int64, in repository.UpdateRecipeInput) (*domain.Recipe, error) {
	return r.update(ctx, id, userID, in)
}

func (r *fakeRecipeRepo) Delete(ctx context.Context, id, userID int64) error {
	return r.delete(ctx, id, userID)
}

type fakeRenderer struct {
	render func(recipe *domain.Recipe) ([]byte, error)
}

func (f *fakeRenderer) RecipePDF(recipe *domain.Recipe) ([]byte, error) {
	return f.render(recipe)
}

func ptr[T any](v T) *T { return &v }
