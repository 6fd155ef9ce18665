package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type userUsecaser interface {
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	Update(ctx context.Context, userID int64, input usecase.UpdateUserInput) (*domain.User, error)
}

type UserHandler struct {
	userUsecase userUsecaser
	logger      *slog.Logger
}

func NewUserHandler(userUsecase userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger.With("component", "user_handler")}
}

type updateUserRequest struct {
	Name     *string `json:"nome"  validate:"omitempty,min=1,max=100"`
	Password *string `json:"senha" validate:"omitempty,min=6,max=100"`
}

// Profile godoc
// @Summary     Current user's profile
// @Tags        usuarios
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResponse
// @Failure     401 {object} respond.Body
// @Failure     404 {object} respond.Body
// @Router      /usuarios/perfil [get]
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.userUsecase.Profile(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Update godoc
// @Summary     Update the current user's name or password
// @Tags        usuarios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body     updateUserRequest true "fields to change"
// @Success     200  {object} userResponse
// @Failure     400  {object} respond.Body
// @Failure     401  {object} respond.Body
// @Failure     404  {object} respond.Body
// @Router      /usuarios/atualizar [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	req, ok := decodeBody[updateUserRequest](c)
	if !ok {
		return
	}

	user, err := h.userUsecase.Update(c.Request.Context(), userID, usecase.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	if req.Password != nil {
		h.logger.InfoContext(c.Request.Context(), "password changed")
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}
