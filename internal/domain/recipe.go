package domain

import "time"

type Recipe struct {
	ID              int64
	UserID          int64
	CategoryID      *int64 // nil = uncategorized
	Name            *string
	PrepTimeMinutes *int64
	Servings        *int64
	Instructions    string
	Ingredients     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Category *Category // joined on read
}
