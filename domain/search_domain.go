package domain

import "fmt"

var (
	MessageSuccessSearchRecipes     = "success search recipes"
	MessageSuccessSearchIngredients = "success search ingredients"
	MessageSuccessAutocomplete      = "success get suggestions"
	MessageSuccessGetTrending       = "success get trending recipes"
	MessageSuccessGetPopular        = "success get popular searches"

	MessageFailedSearchRecipes     = "failed to search recipes"
	MessageFailedSearchIngredients = "failed to search ingredients"

	ErrInvalidPagination = fmt.Errorf("%w: page must be >= 1 and limit between 1 and 100", ErrValidation)
	ErrInvalidMinRating  = fmt.Errorf("%w: min_rating must be between 1 and 5", ErrValidation)
)

type (
	// SearchFilters narrows the candidate set by conjunction. Ingredients is
	// the one inclusive-OR filter: a recipe qualifies when it contains any of
	// the listed names.
	SearchFilters struct {
		Query           string   `json:"query"`
		Ingredients     []string `json:"ingredients"`
		CuisineType     string   `json:"cuisine_type"`
		MealType        string   `json:"meal_type"`
		DifficultyLevel string   `json:"difficulty_level"`
		MaxPrepTime     int      `json:"max_prep_time"`
		MaxCookTime     int      `json:"max_cook_time"`
		IsVegetarian    *bool    `json:"is_vegetarian"`
		IsVegan         *bool    `json:"is_vegan"`
		IsGlutenFree    *bool    `json:"is_gluten_free"`
		MinRating       float64  `json:"min_rating"`
	}

	PaginationMeta struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalCount int64 `json:"total_count"`
		TotalPages int   `json:"total_pages"`
		HasNext    bool  `json:"has_next"`
		HasPrev    bool  `json:"has_prev"`
	}

	SearchRecipesResponse struct {
		Recipes    []RecipeResponse `json:"recipes"`
		Pagination PaginationMeta   `json:"pagination"`
	}

	IngredientResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category,omitempty"`
	}

	AutocompleteResponse struct {
		Recipes     []string `json:"recipes"`
		Ingredients []string `json:"ingredients"`
		Cuisines    []string `json:"cuisines"`
	}

	// PopularSearchResponse is one suggested search term with the recipe
	// count behind it. Type is "cuisine" or "ingredient".
	PopularSearchResponse struct {
		Term  string `json:"term"`
		Type  string `json:"type"`
		Count int64  `json:"count"`
	}
)

// HasRelevanceSort reports whether results should be ordered by the
// relevance score instead of creation time.
func (f SearchFilters) HasRelevanceSort() bool {
	return f.Query != "" || len(f.Ingredients) > 0
}
