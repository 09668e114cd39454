package search

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yumzy-backend/domain"
	"yumzy-backend/entities"
)

// fakeSearchRepository applies the same filter contract as the SQL
// implementation against an in-memory slice.
type fakeSearchRepository struct {
	recipes             []*entities.Recipe
	ingredientsByRecipe map[uuid.UUID][]string
	popularCuisines     []PopularTerm
	popularIngredients  []PopularTerm
}

func (f *fakeSearchRepository) SearchRecipes(_ context.Context, filters domain.SearchFilters, callerID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var matched []*entities.Recipe
	for _, recipe := range f.recipes {
		if !recipe.IsPublished && recipe.AuthorID.String() != callerID {
			continue
		}
		if !f.matches(recipe, filters) {
			continue
		}
		matched = append(matched, recipe)
	}

	if filters.HasRelevanceSort() {
		sort.Slice(matched, func(i, j int) bool {
			si := score(matched[i])
			sj := score(matched[j])
			if si != sj {
				return si > sj
			}
			return matched[i].ID.String() < matched[j].ID.String()
		})
	} else {
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}

	total := int64(len(matched))
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func score(recipe *entities.Recipe) float64 {
	return recipe.AverageRating*float64(recipe.RatingCount) + float64(recipe.ViewCount)
}

func (f *fakeSearchRepository) matches(recipe *entities.Recipe, filters domain.SearchFilters) bool {
	if filters.Query != "" {
		q := strings.ToLower(filters.Query)
		if !strings.Contains(strings.ToLower(recipe.Title), q) &&
			!strings.Contains(strings.ToLower(recipe.Description), q) {
			return false
		}
	}
	if len(filters.Ingredients) > 0 {
		found := false
		for _, want := range filters.Ingredients {
			for _, have := range f.ingredientsByRecipe[recipe.ID] {
				if strings.EqualFold(want, have) {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	if filters.CuisineType != "" && recipe.CuisineType != filters.CuisineType {
		return false
	}
	if filters.MealType != "" && recipe.MealType != filters.MealType {
		return false
	}
	if filters.DifficultyLevel != "" && recipe.DifficultyLevel != filters.DifficultyLevel {
		return false
	}
	if filters.MaxPrepTime > 0 && recipe.PrepTimeMinutes > filters.MaxPrepTime {
		return false
	}
	if filters.MaxCookTime > 0 && recipe.CookTimeMinutes > filters.MaxCookTime {
		return false
	}
	if filters.IsVegetarian != nil && recipe.IsVegetarian != *filters.IsVegetarian {
		return false
	}
	if filters.IsVegan != nil && recipe.IsVegan != *filters.IsVegan {
		return false
	}
	if filters.IsGlutenFree != nil && recipe.IsGlutenFree != *filters.IsGlutenFree {
		return false
	}
	if filters.MinRating > 0 && (recipe.RatingCount == 0 || recipe.AverageRating < filters.MinRating) {
		return false
	}
	return true
}

func (f *fakeSearchRepository) SearchIngredients(_ context.Context, query string, limit int) ([]*entities.Ingredient, error) {
	return nil, nil
}

func (f *fakeSearchRepository) AutocompleteRecipes(_ context.Context, query string, limit int) ([]string, error) {
	var titles []string
	for _, recipe := range f.recipes {
		if recipe.IsPublished && strings.Contains(strings.ToLower(recipe.Title), strings.ToLower(query)) {
			titles = append(titles, recipe.Title)
		}
	}
	sort.Strings(titles)
	if len(titles) > limit {
		titles = titles[:limit]
	}
	return titles, nil
}

func (f *fakeSearchRepository) AutocompleteIngredients(_ context.Context, query string, limit int) ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, list := range f.ingredientsByRecipe {
		for _, name := range list {
			if !seen[name] && strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (f *fakeSearchRepository) AutocompleteCuisines(_ context.Context, query string, limit int) ([]string, error) {
	seen := map[string]bool{}
	var cuisines []string
	for _, recipe := range f.recipes {
		if recipe.IsPublished && recipe.CuisineType != "" && !seen[recipe.CuisineType] &&
			strings.Contains(strings.ToLower(recipe.CuisineType), strings.ToLower(query)) {
			seen[recipe.CuisineType] = true
			cuisines = append(cuisines, recipe.CuisineType)
		}
	}
	sort.Strings(cuisines)
	if len(cuisines) > limit {
		cuisines = cuisines[:limit]
	}
	return cuisines, nil
}

func trendingScoreOf(recipe *entities.Recipe) int64 {
	return recipe.ViewCount + recipe.FavoriteCount*2 + recipe.RatingCount*3
}

func (f *fakeSearchRepository) GetTrendingRecipes(_ context.Context, limit int) ([]*entities.Recipe, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -trendingWindowDays)
	var eligible []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.IsPublished && !recipe.CreatedAt.Before(cutoff) {
			eligible = append(eligible, recipe)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		si := trendingScoreOf(eligible[i])
		sj := trendingScoreOf(eligible[j])
		if si != sj {
			return si > sj
		}
		return eligible[i].ID.String() < eligible[j].ID.String()
	})
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible, nil
}

func (f *fakeSearchRepository) GetPopularCuisines(_ context.Context, limit int) ([]PopularTerm, error) {
	if len(f.popularCuisines) > limit {
		return f.popularCuisines[:limit], nil
	}
	return f.popularCuisines, nil
}

func (f *fakeSearchRepository) GetPopularIngredients(_ context.Context, limit int) ([]PopularTerm, error) {
	if len(f.popularIngredients) > limit {
		return f.popularIngredients[:limit], nil
	}
	return f.popularIngredients, nil
}

type stubFavorites struct {
	favorited map[uuid.UUID]bool
}

func (s *stubFavorites) GetFavoritedRecipeIDs(_ context.Context, _ string, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := map[uuid.UUID]bool{}
	for _, id := range recipeIDs {
		if s.favorited[id] {
			result[id] = true
		}
	}
	return result, nil
}

func (s *stubFavorites) AddFavorite(_ context.Context, _ *entities.Favorite) error { return nil }
func (s *stubFavorites) RemoveFavorite(_ context.Context, _, _ string) error       { return nil }
func (s *stubFavorites) GetFavorite(_ context.Context, _, _ string) (*entities.Favorite, error) {
	return nil, nil
}
func (s *stubFavorites) IsFavorited(_ context.Context, _, _ string) (bool, error) { return false, nil }
func (s *stubFavorites) GetUserFavorites(_ context.Context, _ string, _, _ int) ([]*entities.Favorite, int64, error) {
	return nil, 0, nil
}

type stubRatings struct {
	byRecipe map[uuid.UUID]int
}

func (s *stubRatings) GetUserRatingsForRecipes(_ context.Context, _ string, recipeIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	result := map[uuid.UUID]int{}
	for _, id := range recipeIDs {
		if value, ok := s.byRecipe[id]; ok {
			result[id] = value
		}
	}
	return result, nil
}

func (s *stubRatings) UpsertRating(_ context.Context, _, _ uuid.UUID, _ int, _ string) (*entities.Rating, error) {
	return nil, nil
}
func (s *stubRatings) DeleteRating(_ context.Context, _ string) error { return nil }
func (s *stubRatings) GetRatingByID(_ context.Context, _ string) (*entities.Rating, error) {
	return nil, nil
}
func (s *stubRatings) GetRecipeRatings(_ context.Context, _ string, _, _ int) ([]*entities.Rating, int64, error) {
	return nil, 0, nil
}
func (s *stubRatings) GetUserRating(_ context.Context, _, _ string) (*entities.Rating, error) {
	return nil, nil
}

func newTestService(repo *fakeSearchRepository) SearchService {
	return NewSearchService(repo, &stubFavorites{favorited: map[uuid.UUID]bool{}}, &stubRatings{byRecipe: map[uuid.UUID]int{}})
}

func publishedRecipe(title string, createdAt time.Time) *entities.Recipe {
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    uuid.New(),
		Title:       title,
		IsPublished: true,
	}
	recipe.CreatedAt = createdAt
	return recipe
}

func TestSearchRecipesInvalidPagination(t *testing.T) {
	service := newTestService(&fakeSearchRepository{})

	_, err := service.SearchRecipes(context.Background(), domain.SearchFilters{}, "", 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)

	_, err = service.SearchRecipes(context.Background(), domain.SearchFilters{}, "", 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)

	_, err = service.SearchRecipes(context.Background(), domain.SearchFilters{}, "", 1, 101)
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)
}

func TestSearchRecipesInvalidMinRating(t *testing.T) {
	service := newTestService(&fakeSearchRepository{})

	_, err := service.SearchRecipes(context.Background(), domain.SearchFilters{MinRating: 0.5}, "", 1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidMinRating)

	_, err = service.SearchRecipes(context.Background(), domain.SearchFilters{MinRating: 5.5}, "", 1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidMinRating)
}

func TestSearchRecipesPaginationMeta(t *testing.T) {
	repo := &fakeSearchRepository{}
	base := time.Now()
	for i := 0; i < 25; i++ {
		repo.recipes = append(repo.recipes, publishedRecipe("Dish", base.Add(time.Duration(i)*time.Minute)))
	}
	service := newTestService(repo)

	res, err := service.SearchRecipes(context.Background(), domain.SearchFilters{}, "", 3, 10)
	require.NoError(t, err)

	assert.Len(t, res.Recipes, 5)
	assert.Equal(t, int64(25), res.Pagination.TotalCount)
	assert.Equal(t, 3, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNext)
	assert.True(t, res.Pagination.HasPrev)
}

func TestSearchRecipesEmptyResultStillOnePage(t *testing.T) {
	service := newTestService(&fakeSearchRepository{})

	res, err := service.SearchRecipes(context.Background(), domain.SearchFilters{}, "", 1, 10)
	require.NoError(t, err)

	assert.Empty(t, res.Recipes)
	assert.Equal(t, int64(0), res.Pagination.TotalCount)
	assert.Equal(t, 1, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNext)
}

func TestSearchRecipesRelevanceOrdering(t *testing.T) {
	low := publishedRecipe("Spicy Noodles", time.Now())
	low.AverageRating = 3
	low.RatingCount = 2
	low.ViewCount = 10 // score 16

	high := publishedRecipe("Spicy Ramen", time.Now().Add(-time.Hour))
	high.AverageRating = 5
	high.RatingCount = 20
	high.ViewCount = 50 // score 150

	repo := &fakeSearchRepository{recipes: []*entities.Recipe{low, high}}
	service := newTestService(repo)

	res, err := service.SearchRecipes(context.Background(), domain.SearchFilters{Query: "spicy"}, "", 1, 10)
	require.NoError(t, err)

	require.Len(t, res.Recipes, 2)
	assert.Equal(t, high.ID.String(), res.Recipes[0].ID)
	assert.Equal(t, low.ID.String(), res.Recipes[1].ID)
}

func TestSearchRecipesDefaultOrderingNewestFirst(t *testing.T) {
	older := publishedRecipe("First", time.Now().Add(-time.Hour))
	newer := publishedRecipe("Second", time.Now())
	repo := &fakeSearchRepository{recipes: []*entities.Recipe{older, newer}}
	service := newTestService(repo)

	res, err := service.SearchRecipes(context.Background(), domain.SearchFilters{}, "", 1, 10)
	require.NoError(t, err)

	require.Len(t, res.Recipes, 2)
	assert.Equal(t, newer.ID.String(), res.Recipes[0].ID)
}

func TestSearchRecipesIngredientInclusiveOr(t *testing.T) {
	withChicken := publishedRecipe("Chicken Curry", time.Now())
	withTofu := publishedRecipe("Tofu Stir Fry", time.Now())
	withBeef := publishedRecipe("Beef Stew", time.Now())

	repo := &fakeSearchRepository{
		recipes: []*entities.Recipe{withChicken, withTofu, withBeef},
		ingredientsByRecipe: map[uuid.UUID][]string{
			withChicken.ID: {"chicken", "rice"},
			withTofu.ID:    {"tofu", "soy sauce"},
			withBeef.ID:    {"beef", "potato"},
		},
	}
	service := newTestService(repo)

	res, err := service.SearchRecipes(context.Background(), domain.SearchFilters{
		Ingredients: []string{"chicken", "tofu"},
	}, "", 1, 10)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, recipe := range res.Recipes {
		ids[recipe.ID] = true
	}
	assert.Len(t, res.Recipes, 2)
	assert.True(t, ids[withChicken.ID.String()])
	assert.True(t, ids[withTofu.ID.String()])
	assert.False(t, ids[withBeef.ID.String()])
}

func TestSearchRecipesDietaryFlagsConjoin(t *testing.T) {
	veggie := publishedRecipe("Veggie Bowl", time.Now())
	veggie.IsVegetarian = true

	veganToo := publishedRecipe("Vegan Bowl", time.Now())
	veganToo.IsVegetarian = true
	veganToo.IsVegan = true

	repo := &fakeSearchRepository{recipes: []*entities.Recipe{veggie, veganToo}}
	service := newTestService(repo)

	yes := true
	res, err := service.SearchRecipes(context.Background(), domain.SearchFilters{
		IsVegetarian: &yes,
		IsVegan:      &yes,
	}, "", 1, 10)
	require.NoError(t, err)

	require.Len(t, res.Recipes, 1)
	assert.Equal(t, veganToo.ID.String(), res.Recipes[0].ID)
}

func TestSearchRecipesDraftVisibility(t *testing.T) {
	author := uuid.New()
	draft := &entities.Recipe{ID: uuid.New(), AuthorID: author, Title: "Draft", IsPublished: false}
	repo := &fakeSearchRepository{recipes: []*entities.Recipe{draft}}
	service := newTestService(repo)

	res, err := service.SearchRecipes(context.Background(), domain.SearchFilters{}, "", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)

	res, err = service.SearchRecipes(context.Background(), domain.SearchFilters{}, author.String(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, res.Recipes, 1)
}

func TestSearchRecipesEnrichment(t *testing.T) {
	recipe := publishedRecipe("Pad Thai", time.Now())
	repo := &fakeSearchRepository{recipes: []*entities.Recipe{recipe}}
	service := NewSearchService(
		repo,
		&stubFavorites{favorited: map[uuid.UUID]bool{recipe.ID: true}},
		&stubRatings{byRecipe: map[uuid.UUID]int{recipe.ID: 4}},
	)

	res, err := service.SearchRecipes(context.Background(), domain.SearchFilters{}, uuid.New().String(), 1, 10)
	require.NoError(t, err)

	require.Len(t, res.Recipes, 1)
	assert.True(t, res.Recipes[0].IsFavorited)
	require.NotNil(t, res.Recipes[0].UserRating)
	assert.Equal(t, 4, *res.Recipes[0].UserRating)
}

func TestSearchRecipesAnonymousNotEnriched(t *testing.T) {
	recipe := publishedRecipe("Pho", time.Now())
	repo := &fakeSearchRepository{recipes: []*entities.Recipe{recipe}}
	service := NewSearchService(
		repo,
		&stubFavorites{favorited: map[uuid.UUID]bool{recipe.ID: true}},
		&stubRatings{byRecipe: map[uuid.UUID]int{recipe.ID: 5}},
	)

	res, err := service.SearchRecipes(context.Background(), domain.SearchFilters{}, "", 1, 10)
	require.NoError(t, err)

	require.Len(t, res.Recipes, 1)
	assert.False(t, res.Recipes[0].IsFavorited)
	assert.Nil(t, res.Recipes[0].UserRating)
}

func TestGetTrendingRecipesWeightedOrdering(t *testing.T) {
	views := publishedRecipe("View Heavy", time.Now())
	views.ViewCount = 40 // trending score 40

	engaged := publishedRecipe("Engaged", time.Now())
	engaged.ViewCount = 10
	engaged.FavoriteCount = 50
	engaged.RatingCount = 20 // trending score 170

	repo := &fakeSearchRepository{recipes: []*entities.Recipe{views, engaged}}
	service := newTestService(repo)

	res, err := service.GetTrendingRecipes(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, res, 2)
	assert.Equal(t, engaged.ID.String(), res[0].ID)
	assert.Equal(t, views.ID.String(), res[1].ID)
}

func TestGetTrendingRecipesExcludesOldRecipes(t *testing.T) {
	old := publishedRecipe("Old Hit", time.Now().AddDate(-1, 0, 0))
	old.ViewCount = 1000

	recent := publishedRecipe("New Dish", time.Now())
	recent.ViewCount = 10

	repo := &fakeSearchRepository{recipes: []*entities.Recipe{old, recent}}
	service := newTestService(repo)

	res, err := service.GetTrendingRecipes(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, res, 1)
	assert.Equal(t, recent.ID.String(), res[0].ID)
}

func TestAutocompleteSubstringMatchCappedAtFive(t *testing.T) {
	repo := &fakeSearchRepository{}
	for i := 0; i < 7; i++ {
		repo.recipes = append(repo.recipes, publishedRecipe("Grilled Chicken "+string(rune('A'+i)), time.Now()))
	}
	repo.recipes = append(repo.recipes, publishedRecipe("Beef Stew", time.Now()))
	service := newTestService(repo)

	res, err := service.Autocomplete(context.Background(), "hick")
	require.NoError(t, err)

	assert.Len(t, res.Recipes, 5)
	for _, title := range res.Recipes {
		assert.Contains(t, title, "Chicken")
	}
}

func TestAutocompleteEmptyQuery(t *testing.T) {
	service := newTestService(&fakeSearchRepository{})

	res, err := service.Autocomplete(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, res.Recipes)
	assert.Empty(t, res.Ingredients)
	assert.Empty(t, res.Cuisines)
}

func TestGetPopularSearchesMergesAndSorts(t *testing.T) {
	repo := &fakeSearchRepository{
		popularCuisines: []PopularTerm{
			{Term: "italian", Count: 12},
			{Term: "thai", Count: 3},
		},
		popularIngredients: []PopularTerm{
			{Term: "garlic", Count: 20},
			{Term: "basil", Count: 5},
		},
	}
	service := newTestService(repo)

	res, err := service.GetPopularSearches(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, res, 4)
	assert.Equal(t, "garlic", res[0].Term)
	assert.Equal(t, "ingredient", res[0].Type)
	assert.Equal(t, "italian", res[1].Term)
	assert.Equal(t, "cuisine", res[1].Type)
	assert.Equal(t, "basil", res[2].Term)
	assert.Equal(t, "thai", res[3].Term)
}

func TestGetPopularSearchesTruncatesToLimit(t *testing.T) {
	repo := &fakeSearchRepository{
		popularCuisines: []PopularTerm{
			{Term: "italian", Count: 12},
			{Term: "thai", Count: 3},
			{Term: "mexican", Count: 2},
		},
		popularIngredients: []PopularTerm{
			{Term: "garlic", Count: 20},
			{Term: "basil", Count: 5},
			{Term: "onion", Count: 4},
		},
	}
	service := newTestService(repo)

	res, err := service.GetPopularSearches(context.Background(), 4)
	require.NoError(t, err)

	require.Len(t, res, 4)
	assert.Equal(t, "garlic", res[0].Term)
}
