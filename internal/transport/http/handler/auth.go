package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, login, password string) (*usecase.LoginResult, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Name     string `json:"nome"  validate:"min=1,max=100"`
	Login    string `json:"login" validate:"min=3,max=100"`
	Password string `json:"senha" validate:"min=6,max=100"`
}

type loginRequest struct {
	Login    string `json:"login" validate:"min=1"`
	Password string `json:"senha" validate:"min=1"`
}

// Register godoc
// @Summary     Create an account
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     registerRequest true "new account"
// @Success     201  {object} userResponse
// @Failure     400  {object} respond.Body
// @Failure     409  {object} respond.Body
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req, ok := decodeBody[registerRequest](c)
	if !ok {
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "user registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login godoc
// @Summary     Exchange credentials for a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     loginRequest true "credentials"
// @Success     200  {object} loginResponse
// @Failure     400  {object} respond.Body
// @Failure     401  {object} respond.Body
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req, ok := decodeBody[loginRequest](c)
	if !ok {
		return
	}

	res, err := h.authUsecase.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		User:  toUserResponse(res.User),
		Token: res.Token,
	})
}
