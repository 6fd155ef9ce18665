package domain

import (
	"errors"
	"time"
)

var ErrTokenInvalid = errors.New("token is invalid or expired")

type User struct {
	ID           int64
	Name         *string
	Login        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
