package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"yumzy-backend/domain"
	"yumzy-backend/internal/api/presenters"
	"yumzy-backend/pkg/search"
)

type (
	SearchHandler interface {
		SearchRecipes(c *fiber.Ctx) error
		SearchIngredients(c *fiber.Ctx) error
		Autocomplete(c *fiber.Ctx) error
		GetTrendingRecipes(c *fiber.Ctx) error
		GetPopularSearches(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
	}
)

func NewSearchHandler(searchService search.SearchService) SearchHandler {
	return &searchHandler{searchService: searchService}
}

func (h *searchHandler) SearchRecipes(c *fiber.Ctx) error {
	callerID := callerIDOrEmpty(c)
	page, limit := pageWindow(c)

	filters := domain.SearchFilters{
		Query:           c.Query("q", ""),
		CuisineType:     c.Query("cuisine_type", ""),
		MealType:        c.Query("meal_type", ""),
		DifficultyLevel: c.Query("difficulty_level", ""),
	}

	if raw := c.Query("ingredients", ""); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				filters.Ingredients = append(filters.Ingredients, trimmed)
			}
		}
	}

	if v, err := strconv.Atoi(c.Query("max_prep_time", "0")); err == nil {
		filters.MaxPrepTime = v
	}
	if v, err := strconv.Atoi(c.Query("max_cook_time", "0")); err == nil {
		filters.MaxCookTime = v
	}
	if v, err := strconv.ParseFloat(c.Query("min_rating", "0"), 64); err == nil {
		filters.MinRating = v
	}

	filters.IsVegetarian = queryBoolPtr(c, "is_vegetarian")
	filters.IsVegan = queryBoolPtr(c, "is_vegan")
	filters.IsGlutenFree = queryBoolPtr(c, "is_gluten_free")

	res, err := h.searchService.SearchRecipes(c.Context(), filters, callerID, page, limit)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *searchHandler) SearchIngredients(c *fiber.Ctx) error {
	query := c.Query("q", "")
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		limit = 10
	}

	res, err := h.searchService.SearchIngredients(c.Context(), query, limit)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedSearchIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchIngredients)
}

func (h *searchHandler) Autocomplete(c *fiber.Ctx) error {
	query := c.Query("q", "")

	res, err := h.searchService.Autocomplete(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAutocomplete)
}

func (h *searchHandler) GetTrendingRecipes(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		limit = 10
	}

	res, err := h.searchService.GetTrendingRecipes(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTrending)
}

func (h *searchHandler) GetPopularSearches(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		limit = 10
	}

	res, err := h.searchService.GetPopularSearches(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponseFromError(c, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPopular)
}

// queryBoolPtr distinguishes an absent flag from an explicit false.
func queryBoolPtr(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key, "")
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
