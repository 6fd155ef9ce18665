package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/transport/http/handler"
	"github.com/ErlanBelekov/recipes-api/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

type fakeCategoryUsecase struct{}

func (fakeCategoryUsecase) List(_ context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: 1, Name: strPtr("Bolos")}, {ID: 2}}, nil
}

func (fakeCategoryUsecase) Get(_ context.Context, id int64) (*domain.Category, error) {
	if id != 1 {
		return nil, domain.ErrCategoryNotFound
	}
	return &domain.Category{ID: 1, Name: strPtr("Bolos")}, nil
}

func newCategoryEngine() *gin.Engine {
	h := handler.NewCategoryHandler(fakeCategoryUsecase{})
	r := gin.New()
	r.Use(middleware.Errors(discard))
	r.GET("/categorias", h.List)
	r.GET("/categorias/:id", h.Get)
	return r
}

func TestCategory_List(t *testing.T) {
	w := do(newCategoryEngine(), http.MethodGet, "/categorias", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	want := `[{"id":1,"nome":"Bolos"},{"id":2,"nome":null}]`
	if w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
}

func TestCategory_Get(t *testing.T) {
	r := newCategoryEngine()

	if w := do(r, http.MethodGet, "/categorias/1", ""); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w := do(r, http.MethodGet, "/categorias/9", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if w := do(r, http.MethodGet, "/categorias/nove", ""); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
