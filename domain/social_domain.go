package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessSubmitRating = "rating submitted successfully"
	MessageSuccessDeleteRating = "rating deleted successfully"
	MessageSuccessGetRatings   = "success get ratings"

	MessageFailedSubmitRating = "failed to submit rating"
	MessageFailedDeleteRating = "failed to delete rating"
	MessageFailedGetRatings   = "failed to get ratings"

	ErrRatingNotFound     = fmt.Errorf("%w: rating", ErrNotFound)
	ErrRatingAccessDenied = fmt.Errorf("%w: not the rating owner", ErrAccessDenied)
	ErrRatingOutOfRange   = fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
)

type (
	SubmitRatingRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Comment  string `json:"comment"`
	}

	RatingResponse struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		UserID    string    `json:"user_id"`
		Username  string    `json:"username,omitempty"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	RecipeRatingsResponse struct {
		Ratings    []RatingResponse `json:"ratings"`
		Pagination PaginationMeta   `json:"pagination"`
	}
)
