package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ErlanBelekov/recipes-api/internal/auth"
	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/metrics"
	"github.com/ErlanBelekov/recipes-api/internal/repository"
)

// TokenIssuer is satisfied by *auth.TokenService.
type TokenIssuer interface {
	Issue(subjectID int64, ttl time.Duration) (string, error)
}

type AuthUsecase struct {
	users    repository.UserRepository
	tokens   TokenIssuer
	tokenTTL time.Duration
}

func NewAuthUsecase(users repository.UserRepository, tokens TokenIssuer, tokenTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

type RegisterInput struct {
	Name     string
	Login    string
	Password string
}

// Register creates an account. The password is stored only as a bcrypt hash.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	_, err := u.users.FindByLogin(ctx, input.Login)
	switch {
	case err == nil:
		return nil, domain.ErrLoginTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("check login: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	name := input.Name
	user, err := u.users.Create(ctx, repository.CreateUserInput{
		Name:         &name,
		Login:        input.Login,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	return user, nil
}

type LoginResult struct {
	User  *domain.User
	Token string
}

// Login checks credentials and issues a bearer token. An unknown login and
// a wrong password fail with the same error.
func (u *AuthUsecase) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	user, err := u.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// same bcrypt cost as the wrong-password path
			auth.VerifyPassword(password, dummyHash())
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, u.tokenTTL)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("issue token: %w", err)
	}

	metrics.TokensIssuedTotal.Inc()
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return &LoginResult{User: user, Token: token}, nil
}

var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("not-a-real-password")
	return h
})
