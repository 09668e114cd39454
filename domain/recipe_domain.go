package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"
	MessageSuccessGetShareURL     = "success get share url"
	MessageSuccessShareRecipe     = "recipe share recorded"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"
	MessageFailedShareRecipe     = "failed to record recipe share"

	ErrRecipeNotFound     = fmt.Errorf("%w: recipe", ErrNotFound)
	ErrRecipeAccessDenied = fmt.Errorf("%w: not the recipe author", ErrAccessDenied)
	ErrInvalidRecipeData  = fmt.Errorf("%w: invalid recipe data", ErrValidation)
)

type (
	IngredientRequest struct {
		Name     string `json:"name" validate:"required,max=50"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
		Category string `json:"category"`
	}

	CreateRecipeRequest struct {
		Title           string              `json:"title" validate:"required,max=100"`
		Description     string              `json:"description"`
		Instructions    string              `json:"instructions" validate:"required"`
		PrepTimeMinutes int                 `json:"prep_time_minutes" validate:"min=0"`
		CookTimeMinutes int                 `json:"cook_time_minutes" validate:"min=0"`
		Servings        int                 `json:"servings" validate:"min=0"`
		DifficultyLevel string              `json:"difficulty_level" validate:"omitempty,oneof=Easy Medium Hard"`
		CuisineType     string              `json:"cuisine_type"`
		MealType        string              `json:"meal_type"`
		IsVegetarian    bool                `json:"is_vegetarian"`
		IsVegan         bool                `json:"is_vegan"`
		IsGlutenFree    bool                `json:"is_gluten_free"`
		IsPublished     *bool               `json:"is_published"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"dive"`
	}

	UpdateRecipeRequest struct {
		Title           *string             `json:"title" validate:"omitempty,max=100"`
		Description     *string             `json:"description"`
		Instructions    *string             `json:"instructions"`
		PrepTimeMinutes *int                `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes *int                `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        *int                `json:"servings" validate:"omitempty,min=0"`
		DifficultyLevel *string             `json:"difficulty_level" validate:"omitempty,oneof=Easy Medium Hard"`
		CuisineType     *string             `json:"cuisine_type"`
		MealType        *string             `json:"meal_type"`
		IsVegetarian    *bool               `json:"is_vegetarian"`
		IsVegan         *bool               `json:"is_vegan"`
		IsGlutenFree    *bool               `json:"is_gluten_free"`
		IsPublished     *bool               `json:"is_published"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	RecipeIngredientResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
		Category string `json:"category,omitempty"`
	}

	RecipeResponse struct {
		ID              string                     `json:"id"`
		Title           string                     `json:"title"`
		Description     string                     `json:"description"`
		Instructions    string                     `json:"instructions,omitempty"`
		ImageURL        string                     `json:"image_url,omitempty"`
		PrepTimeMinutes int                        `json:"prep_time_minutes"`
		CookTimeMinutes int                        `json:"cook_time_minutes"`
		TotalMinutes    int                        `json:"total_minutes"`
		Servings        int                        `json:"servings"`
		DifficultyLevel string                     `json:"difficulty_level"`
		CuisineType     string                     `json:"cuisine_type"`
		MealType        string                     `json:"meal_type"`
		IsVegetarian    bool                       `json:"is_vegetarian"`
		IsVegan         bool                       `json:"is_vegan"`
		IsGlutenFree    bool                       `json:"is_gluten_free"`
		IsPublished     bool                       `json:"is_published"`
		ViewCount       int64                      `json:"view_count"`
		FavoriteCount   int64                      `json:"favorite_count"`
		RatingCount     int64                      `json:"rating_count"`
		AverageRating   float64                    `json:"average_rating"`
		AuthorID        string                     `json:"author_id"`
		AuthorUsername  string                     `json:"author_username,omitempty"`
		CreatedAt       time.Time                  `json:"created_at"`
		Ingredients     []RecipeIngredientResponse `json:"ingredients,omitempty"`
		IsFavorited     bool                       `json:"is_favorited"`
		UserRating      *int                       `json:"user_rating,omitempty"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		SimilarRecipes []RecipeResponse `json:"similar_recipes"`
	}

	ShareURLResponse struct {
		RecipeID    string `json:"recipe_id"`
		RecipeTitle string `json:"recipe_title"`
		ShareURL    string `json:"share_url"`
		Platform    string `json:"platform"`
	}

	ShareRecipeResponse struct {
		RecipeID string    `json:"recipe_id"`
		ShareURL string    `json:"share_url"`
		Platform string    `json:"platform"`
		SharedAt time.Time `json:"shared_at"`
	}
)
