package handler

import (
	"time"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
)

type userResponse struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"nome"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"criadoEm"`
	UpdatedAt time.Time `json:"alteradoEm"`
}

type loginResponse struct {
	User  userResponse `json:"usuario"`
	Token string       `json:"token"`
}

type categoryResponse struct {
	ID   int64   `json:"id"`
	Name *string `json:"nome"`
}

type recipeResponse struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"idUsuario"`
	CategoryID      *int64            `json:"idCategoria"`
	Name            *string           `json:"nome"`
	PrepTimeMinutes *int64            `json:"tempoPreparoMinutos"`
	Servings        *int64            `json:"porcoes"`
	Instructions    string            `json:"modoPreparo"`
	Ingredients     *string           `json:"ingredientes"`
	CreatedAt       time.Time         `json:"criadoEm"`
	UpdatedAt       time.Time         `json:"alteradoEm"`
	Category        *categoryResponse `json:"categoria"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// toUserResponse never carries the password hash.
func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Login:     u.Login,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name}
}

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	resp := recipeResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		CategoryID:      r.CategoryID,
		Name:            r.Name,
		PrepTimeMinutes: r.PrepTimeMinutes,
		Servings:        r.Servings,
		Instructions:    r.Instructions,
		Ingredients:     r.Ingredients,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Category != nil {
		c := toCategoryResponse(*r.Category)
		resp.Category = &c
	}
	return resp
}
