package search

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"yumzy-backend/domain"
	"yumzy-backend/entities"
	"yumzy-backend/internal/metrics"
	"yumzy-backend/internal/utils"
	"yumzy-backend/pkg/favorite"
	"yumzy-backend/pkg/recipe"
	"yumzy-backend/pkg/social"
)

const (
	defaultSuggestionLimit = 10
	defaultTrendingLimit   = 10
	defaultPopularLimit    = 10
	maxSuggestionLimit     = 25
	autocompleteLimit      = 5
)

type (
	SearchService interface {
		SearchRecipes(ctx context.Context, filters domain.SearchFilters, callerID string, page, limit int) (domain.SearchRecipesResponse, error)
		SearchIngredients(ctx context.Context, query string, limit int) ([]domain.IngredientResponse, error)
		Autocomplete(ctx context.Context, query string) (domain.AutocompleteResponse, error)
		GetTrendingRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error)
		GetPopularSearches(ctx context.Context, limit int) ([]domain.PopularSearchResponse, error)
	}

	searchService struct {
		searchRepository   SearchRepository
		favoriteRepository favorite.FavoriteRepository
		ratingRepository   social.RatingRepository
	}
)

func NewSearchService(
	searchRepository SearchRepository,
	favoriteRepository favorite.FavoriteRepository,
	ratingRepository social.RatingRepository,
) SearchService {
	return &searchService{
		searchRepository:   searchRepository,
		favoriteRepository: favoriteRepository,
		ratingRepository:   ratingRepository,
	}
}

func (s *searchService) SearchRecipes(ctx context.Context, filters domain.SearchFilters, callerID string, page, limit int) (domain.SearchRecipesResponse, error) {
	if !utils.ValidPageWindow(page, limit) {
		return domain.SearchRecipesResponse{}, domain.ErrInvalidPagination
	}
	if filters.MinRating != 0 && (filters.MinRating < 1 || filters.MinRating > 5) {
		return domain.SearchRecipesResponse{}, domain.ErrInvalidMinRating
	}

	recipes, count, err := s.searchRepository.SearchRecipes(ctx, filters, callerID, page, limit)
	if err != nil {
		return domain.SearchRecipesResponse{}, err
	}

	metrics.SearchesTotal.Inc()

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, entity := range recipes {
		result = append(result, recipe.ToResponse(entity))
	}

	if callerID != "" {
		s.enrichForCaller(ctx, callerID, recipes, result)
	}

	totalPages := utils.TotalPages(count, limit)

	return domain.SearchRecipesResponse{
		Recipes: result,
		Pagination: domain.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalCount: count,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// enrichForCaller fills is_favorited and user_rating for the whole page with
// two batched lookups instead of per-recipe queries. Enrichment is
// best-effort and never fails the search itself.
func (s *searchService) enrichForCaller(ctx context.Context, callerID string, recipes []*entities.Recipe, result []domain.RecipeResponse) {
	if len(recipes) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(recipes))
	for _, entity := range recipes {
		ids = append(ids, entity.ID)
	}

	favorited, err := s.favoriteRepository.GetFavoritedRecipeIDs(ctx, callerID, ids)
	if err != nil {
		logrus.WithField("user_id", callerID).WithError(err).Warn("failed to load favorite flags for search results")
		favorited = map[uuid.UUID]bool{}
	}
	ratings, err := s.ratingRepository.GetUserRatingsForRecipes(ctx, callerID, ids)
	if err != nil {
		logrus.WithField("user_id", callerID).WithError(err).Warn("failed to load user ratings for search results")
		ratings = map[uuid.UUID]int{}
	}

	for i, entity := range recipes {
		result[i].IsFavorited = favorited[entity.ID]
		if value, ok := ratings[entity.ID]; ok {
			rating := value
			result[i].UserRating = &rating
		}
	}
}

func (s *searchService) SearchIngredients(ctx context.Context, query string, limit int) ([]domain.IngredientResponse, error) {
	if limit <= 0 || limit > maxSuggestionLimit {
		limit = defaultSuggestionLimit
	}

	ingredients, err := s.searchRepository.SearchIngredients(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		result = append(result, domain.IngredientResponse{
			ID:       ing.ID.String(),
			Name:     ing.Name,
			Category: ing.Category,
		})
	}
	return result, nil
}

func (s *searchService) Autocomplete(ctx context.Context, query string) (domain.AutocompleteResponse, error) {
	if query == "" {
		return domain.AutocompleteResponse{
			Recipes:     []string{},
			Ingredients: []string{},
			Cuisines:    []string{},
		}, nil
	}

	recipes, err := s.searchRepository.AutocompleteRecipes(ctx, query, autocompleteLimit)
	if err != nil {
		return domain.AutocompleteResponse{}, err
	}
	ingredients, err := s.searchRepository.AutocompleteIngredients(ctx, query, autocompleteLimit)
	if err != nil {
		return domain.AutocompleteResponse{}, err
	}
	cuisines, err := s.searchRepository.AutocompleteCuisines(ctx, query, autocompleteLimit)
	if err != nil {
		return domain.AutocompleteResponse{}, err
	}

	return domain.AutocompleteResponse{
		Recipes:     recipes,
		Ingredients: ingredients,
		Cuisines:    cuisines,
	}, nil
}

func (s *searchService) GetTrendingRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error) {
	if limit <= 0 || limit > maxSuggestionLimit {
		limit = defaultTrendingLimit
	}

	recipes, err := s.searchRepository.GetTrendingRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, entity := range recipes {
		result = append(result, recipe.ToResponse(entity))
	}
	return result, nil
}

// GetPopularSearches merges the most used cuisines and ingredients into one
// list of suggested terms, most used first.
func (s *searchService) GetPopularSearches(ctx context.Context, limit int) ([]domain.PopularSearchResponse, error) {
	if limit <= 0 || limit > maxSuggestionLimit {
		limit = defaultPopularLimit
	}

	half := limit / 2
	if half == 0 {
		half = 1
	}

	cuisines, err := s.searchRepository.GetPopularCuisines(ctx, half)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.searchRepository.GetPopularIngredients(ctx, half)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PopularSearchResponse, 0, len(cuisines)+len(ingredients))
	for _, term := range cuisines {
		result = append(result, domain.PopularSearchResponse{Term: term.Term, Type: "cuisine", Count: term.Count})
	}
	for _, term := range ingredients {
		result = append(result, domain.PopularSearchResponse{Term: term.Term, Type: "ingredient", Count: term.Count})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
