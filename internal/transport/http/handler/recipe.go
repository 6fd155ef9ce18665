package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/repository"
	"github.com/ErlanBelekov/recipes-api/internal/usecase"
	"github.com/ErlanBelekov/recipes-api/internal/validate"
	"github.com/gin-gonic/gin"
)

const msgRecipeRemoved = "recipe removed successfully"

type recipeUsecaser interface {
	List(ctx context.Context, userID int64) ([]*domain.Recipe, error)
	Get(ctx context.Context, id, userID int64) (*domain.Recipe, error)
	Create(ctx context.Context, input usecase.CreateRecipeInput) (*domain.Recipe, error)
	Update(ctx context.Context, id, userID int64, input repository.UpdateRecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, id, userID int64) error
	Report(ctx context.Context, id, userID int64) ([]byte, error)
}

type RecipeHandler struct {
	recipeUsecase recipeUsecaser
	logger        *slog.Logger
}

func NewRecipeHandler(recipeUsecase recipeUsecaser, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{recipeUsecase: recipeUsecase, logger: logger.With("component", "recipe_handler")}
}

type createRecipeRequest struct {
	Name            string  `json:"nome"                validate:"min=1,max=45"`
	CategoryID      *int64  `json:"idCategoria"         validate:"omitempty,gt=0"`
	PrepTimeMinutes *int64  `json:"tempoPreparoMinutos" validate:"omitempty,gt=0"`
	Servings        *int64  `json:"porcoes"             validate:"omitempty,gt=0"`
	Instructions    string  `json:"modoPreparo"         validate:"min=1"`
	Ingredients     *string `json:"ingredientes"`
}

// updateRecipeRequest: every field optional; idCategoria null clears the category.
type updateRecipeRequest struct {
	Name            *string                  `json:"nome"                validate:"omitempty,min=1,max=45"`
	CategoryID      validate.Nullable[int64] `json:"idCategoria"         validate:"omitempty,gt=0" swaggertype:"integer"`
	PrepTimeMinutes *int64                   `json:"tempoPreparoMinutos" validate:"omitempty,gt=0"`
	Servings        *int64                   `json:"porcoes"             validate:"omitempty,gt=0"`
	Instructions    *string                  `json:"modoPreparo"         validate:"omitempty,min=1"`
	Ingredients     *string                  `json:"ingredientes"`
}

// List godoc
// @Summary     List the caller's recipes
// @Tags        receitas
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  recipeResponse
// @Failure     401 {object} respond.Body
// @Router      /receitas [get]
func (h *RecipeHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeUsecase.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := make([]recipeResponse, len(recipes))
	for i, r := range recipes {
		resp[i] = toRecipeResponse(r)
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary     Get one of the caller's recipes
// @Tags        receitas
// @Produce     json
// @Security    BearerAuth
// @Param       id  path     int true "recipe id"
// @Success     200 {object} recipeResponse
// @Failure     400 {object} respond.Body
// @Failure     401 {object} respond.Body
// @Failure     404 {object} respond.Body
// @Router      /receitas/{id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeUsecase.Get(c.Request.Context(), id, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Create godoc
// @Summary     Create a recipe owned by the caller
// @Tags        receitas
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body     createRecipeRequest true "recipe"
// @Success     201  {object} recipeResponse
// @Failure     400  {object} respond.Body
// @Failure     401  {object} respond.Body
// @Failure     404  {object} respond.Body "unknown category"
// @Router      /receitas [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	req, ok := decodeBody[createRecipeRequest](c)
	if !ok {
		return
	}

	recipe, err := h.recipeUsecase.Create(c.Request.Context(), usecase.CreateRecipeInput{
		UserID:          userID,
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		PrepTimeMinutes: req.PrepTimeMinutes,
		Servings:        req.Servings,
		Instructions:    req.Instructions,
		Ingredients:     req.Ingredients,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "recipe created", "recipe_id", recipe.ID)
	c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

// Update godoc
// @Summary     Partially update one of the caller's recipes
// @Tags        receitas
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path     int                 true "recipe id"
// @Param       body body     updateRecipeRequest true "fields to change"
// @Success     200  {object} recipeResponse
// @Failure     400  {object} respond.Body
// @Failure     401  {object} respond.Body
// @Failure     404  {object} respond.Body
// @Router      /receitas/{id} [put]
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := decodeBody[updateRecipeRequest](c)
	if !ok {
		return
	}

	recipe, err := h.recipeUsecase.Update(c.Request.Context(), id, userID, repository.UpdateRecipeInput{
		Name:            req.Name,
		SetCategory:     req.CategoryID.Set,
		CategoryID:      req.CategoryID.Ptr(),
		PrepTimeMinutes: req.PrepTimeMinutes,
		Servings:        req.Servings,
		Instructions:    req.Instructions,
		Ingredients:     req.Ingredients,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Delete godoc
// @Summary     Delete one of the caller's recipes
// @Tags        receitas
// @Produce     json
// @Security    BearerAuth
// @Param       id  path     int true "recipe id"
// @Success     200 {object} messageResponse
// @Failure     400 {object} respond.Body
// @Failure     401 {object} respond.Body
// @Failure     404 {object} respond.Body
// @Router      /receitas/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.recipeUsecase.Delete(c.Request.Context(), id, userID); err != nil {
		_ = c.Error(err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "recipe deleted", "recipe_id", id)
	c.JSON(http.StatusOK, messageResponse{Message: msgRecipeRemoved})
}

// Report godoc
// @Summary     Download a recipe as PDF
// @Tags        receitas
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       id  path     int true "recipe id"
// @Success     200 {file}   binary
// @Failure     400 {object} respond.Body
// @Failure     401 {object} respond.Body
// @Failure     404 {object} respond.Body
// @Router      /receitas/{id}/relatorio [get]
func (h *RecipeHandler) Report(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	pdf, err := h.recipeUsecase.Report(c.Request.Context(), id, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receita-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
