package handler

import (
	"context"
	"net/http"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/gin-gonic/gin"
)

type categoryUsecaser interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
}

type CategoryHandler struct {
	categoryUsecase categoryUsecaser
}

func NewCategoryHandler(categoryUsecase categoryUsecaser) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

// List godoc
// @Summary     List all categories
// @Tags        categorias
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  categoryResponse
// @Failure     401 {object} respond.Body
// @Router      /categorias [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUsecase.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := make([]categoryResponse, len(categories))
	for i, cat := range categories {
		resp[i] = toCategoryResponse(cat)
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary     Get one category
// @Tags        categorias
// @Produce     json
// @Security    BearerAuth
// @Param       id  path     int true "category id"
// @Success     200 {object} categoryResponse
// @Failure     400 {object} respond.Body
// @Failure     401 {object} respond.Body
// @Failure     404 {object} respond.Body
// @Router      /categorias/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.categoryUsecase.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(*category))
}
