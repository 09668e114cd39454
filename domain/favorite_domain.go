package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessAddFavorite    = "recipe added to favorites"
	MessageSuccessRemoveFavorite = "recipe removed from favorites"
	MessageSuccessGetFavorites   = "success get favorites"

	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"
	MessageFailedGetFavorites   = "failed to get favorites"

	ErrFavoriteNotFound = fmt.Errorf("%w: favorite", ErrNotFound)
	ErrAlreadyFavorited = fmt.Errorf("%w: recipe already in favorites", ErrConflict)
)

type (
	AddFavoriteRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Notes    string `json:"notes"`
	}

	FavoriteResponse struct {
		ID          string    `json:"id"`
		RecipeID    string    `json:"recipe_id"`
		RecipeTitle string    `json:"recipe_title"`
		RecipeImage string    `json:"recipe_image,omitempty"`
		Notes       string    `json:"notes,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	FavoriteListResponse struct {
		Favorites  []FavoriteResponse `json:"favorites"`
		Pagination PaginationMeta     `json:"pagination"`
	}

	FavoriteStatusResponse struct {
		RecipeID    string `json:"recipe_id"`
		IsFavorited bool   `json:"is_favorited"`
	}
)
