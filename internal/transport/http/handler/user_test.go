package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/transport/http/handler"
	"github.com/ErlanBelekov/recipes-api/internal/transport/http/middleware"
	"github.com/ErlanBelekov/recipes-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeUserUsecase struct {
	profile func(ctx context.Context, userID int64) (*domain.User, error)
	update  func(ctx context.Context, userID int64, input usecase.UpdateUserInput) (*domain.User, error)
}

func (f *fakeUserUsecase) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return f.profile(ctx, userID)
}

func (f *fakeUserUsecase) Update(ctx context.Context, userID int64, input usecase.UpdateUserInput) (*domain.User, error) {
	return f.update(ctx, userID, input)
}

func newUserEngine(uc *fakeUserUsecase) *gin.Engine {
	h := handler.NewUserHandler(uc, discard)
	r := gin.New()
	r.Use(middleware.Errors(discard))
	g := r.Group("/usuarios", asCaller)
	g.GET("/perfil", h.Profile)
	g.PUT("/atualizar", h.Update)
	return r
}

func TestUser_Profile(t *testing.T) {
	uc := &fakeUserUsecase{
		profile: func(_ context.Context, userID int64) (*domain.User, error) {
			return &domain.User{ID: userID, Login: "ana1", PasswordHash: "hash"}, nil
		},
	}

	w := do(newUserEngine(uc), http.MethodGet, "/usuarios/perfil", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	if body["id"] != float64(callerUserID) {
		t.Errorf("id = %v, want %d", body["id"], callerUserID)
	}
	if _, ok := body["senha"]; ok {
		t.Error("response contains senha")
	}
}

func TestUser_Profile_Deleted(t *testing.T) {
	uc := &fakeUserUsecase{
		profile: func(_ context.Context, _ int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	if w := do(newUserEngine(uc), http.MethodGet, "/usuarios/perfil", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUser_Update_PassesOnlyGivenFields(t *testing.T) {
	var got usecase.UpdateUserInput
	uc := &fakeUserUsecase{
		update: func(_ context.Context, userID int64, in usecase.UpdateUserInput) (*domain.User, error) {
			got = in
			return &domain.User{ID: userID, Name: in.Name, Login: "ana1"}, nil
		},
	}

	w := do(newUserEngine(uc), http.MethodPut, "/usuarios/atualizar", `{"nome":"Ana Maria"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if got.Name == nil || *got.Name != "Ana Maria" {
		t.Errorf("Name = %v", got.Name)
	}
	if got.Password != nil {
		t.Errorf("Password = %v, want nil", got.Password)
	}
}

func TestUser_Update_ShortPassword(t *testing.T) {
	w := do(newUserEngine(&fakeUserUsecase{}), http.MethodPut, "/usuarios/atualizar", `{"senha":"123"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
