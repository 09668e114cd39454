package recipe

import (
	"context"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"yumzy-backend/domain"
	"yumzy-backend/entities"
)

type fakeRecipeRepository struct {
	mu      sync.Mutex
	recipes map[uuid.UUID]*entities.Recipe
	views   map[uuid.UUID]int
	similar []*entities.Recipe
}

func newFakeRecipeRepository(recipes ...*entities.Recipe) *fakeRecipeRepository {
	repo := &fakeRecipeRepository{
		recipes: map[uuid.UUID]*entities.Recipe{},
		views:   map[uuid.UUID]int{},
	}
	for _, recipe := range recipes {
		repo.recipes[recipe.ID] = recipe
	}
	return repo
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe, _ []IngredientInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	recipe, ok := f.recipes[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe, _ []IngredientInput, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(f.recipes, parsed)
	return nil
}

func (f *fakeRecipeRepository) GetRecipesByAuthor(_ context.Context, authorID string, includeUnpublished bool, page, limit int) ([]*entities.Recipe, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.AuthorID.String() != authorID {
			continue
		}
		if !recipe.IsPublished && !includeUnpublished {
			continue
		}
		matched = append(matched, recipe)
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

func (f *fakeRecipeRepository) GetSimilarRecipes(_ context.Context, _ *entities.Recipe, limit int) ([]*entities.Recipe, error) {
	if len(f.similar) > limit {
		return f.similar[:limit], nil
	}
	return f.similar, nil
}

func (f *fakeRecipeRepository) IncrementViewCount(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	f.views[parsed]++
	return nil
}

type stubFavoriteRepo struct{}

func (stubFavoriteRepo) AddFavorite(_ context.Context, _ *entities.Favorite) error { return nil }
func (stubFavoriteRepo) RemoveFavorite(_ context.Context, _, _ string) error       { return nil }
func (stubFavoriteRepo) GetFavorite(_ context.Context, _, _ string) (*entities.Favorite, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubFavoriteRepo) IsFavorited(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}
func (stubFavoriteRepo) GetUserFavorites(_ context.Context, _ string, _, _ int) ([]*entities.Favorite, int64, error) {
	return nil, 0, nil
}
func (stubFavoriteRepo) GetFavoritedRecipeIDs(_ context.Context, _ string, _ []uuid.UUID) (map[uuid.UUID]bool, error) {
	return map[uuid.UUID]bool{}, nil
}

type stubRatingRepo struct{}

func (stubRatingRepo) UpsertRating(_ context.Context, _, _ uuid.UUID, _ int, _ string) (*entities.Rating, error) {
	return nil, nil
}
func (stubRatingRepo) DeleteRating(_ context.Context, _ string) error { return nil }
func (stubRatingRepo) GetRatingByID(_ context.Context, _ string) (*entities.Rating, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubRatingRepo) GetRecipeRatings(_ context.Context, _ string, _, _ int) ([]*entities.Rating, int64, error) {
	return nil, 0, nil
}
func (stubRatingRepo) GetUserRating(_ context.Context, _, _ string) (*entities.Rating, error) {
	return &entities.Rating{Rating: 3}, nil
}
func (stubRatingRepo) GetUserRatingsForRecipes(_ context.Context, _ string, _ []uuid.UUID) (map[uuid.UUID]int, error) {
	return map[uuid.UUID]int{}, nil
}

type stubS3 struct{}

func (stubS3) UploadFile(_ context.Context, key string, _ *multipart.FileHeader) (string, error) {
	return "https://bucket.s3.amazonaws.com/" + key, nil
}

func newTestService(repo *fakeRecipeRepository) RecipeService {
	return NewRecipeService(repo, stubFavoriteRepo{}, stubRatingRepo{}, stubS3{})
}

func publishedRecipe(authorID uuid.UUID, title string) *entities.Recipe {
	return &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Title:       title,
		IsPublished: true,
	}
}

func TestCreateRecipeDefaultsToPublished(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := newTestService(repo)
	authorID := uuid.New()

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:           "Laksa",
		Instructions:    "Simmer the broth.",
		PrepTimeMinutes: 20,
		CookTimeMinutes: 40,
	}, authorID.String())
	require.NoError(t, err)

	assert.True(t, res.IsPublished)
	assert.Equal(t, 60, res.TotalMinutes)
	assert.Equal(t, authorID.String(), res.AuthorID)
}

func TestCreateRecipeAsDraft(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := newTestService(repo)

	draft := false
	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "WIP Curry",
		Instructions: "To be written.",
		IsPublished:  &draft,
	}, uuid.New().String())
	require.NoError(t, err)

	assert.False(t, res.IsPublished)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	service := newTestService(newFakeRecipeRepository())

	_, err := service.GetRecipeDetail(context.Background(), uuid.New().String(), "")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipeDetailDraftHiddenFromOthers(t *testing.T) {
	authorID := uuid.New()
	draft := &entities.Recipe{ID: uuid.New(), AuthorID: authorID, Title: "Draft", IsPublished: false}
	service := newTestService(newFakeRecipeRepository(draft))

	_, err := service.GetRecipeDetail(context.Background(), draft.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeAccessDenied)

	res, err := service.GetRecipeDetail(context.Background(), draft.ID.String(), authorID.String())
	require.NoError(t, err)
	assert.Equal(t, "Draft", res.Title)
}

func TestGetRecipeDetailEnrichesCaller(t *testing.T) {
	recipe := publishedRecipe(uuid.New(), "Bibimbap")
	service := newTestService(newFakeRecipeRepository(recipe))

	res, err := service.GetRecipeDetail(context.Background(), recipe.ID.String(), uuid.New().String())
	require.NoError(t, err)

	assert.True(t, res.IsFavorited)
	require.NotNil(t, res.UserRating)
	assert.Equal(t, 3, *res.UserRating)
}

func TestGetRecipeDetailIncludesSimilar(t *testing.T) {
	recipe := publishedRecipe(uuid.New(), "Tom Yum")
	repo := newFakeRecipeRepository(recipe)
	repo.similar = []*entities.Recipe{
		publishedRecipe(uuid.New(), "Tom Kha"),
		publishedRecipe(uuid.New(), "Green Curry"),
	}
	service := newTestService(repo)

	res, err := service.GetRecipeDetail(context.Background(), recipe.ID.String(), "")
	require.NoError(t, err)

	require.Len(t, res.SimilarRecipes, 2)
	assert.Equal(t, "Tom Kha", res.SimilarRecipes[0].Title)
}

func TestUpdateRecipeNonAuthorDenied(t *testing.T) {
	recipe := publishedRecipe(uuid.New(), "Carbonara")
	service := newTestService(newFakeRecipeRepository(recipe))

	title := "Stolen"
	_, err := service.UpdateRecipe(context.Background(), recipe.ID.String(), domain.UpdateRecipeRequest{
		Title: &title,
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeAccessDenied)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestUpdateRecipePartial(t *testing.T) {
	authorID := uuid.New()
	recipe := publishedRecipe(authorID, "Ramen")
	recipe.PrepTimeMinutes = 10
	recipe.CookTimeMinutes = 30
	recipe.TotalMinutes = 40
	recipe.Servings = 2
	service := newTestService(newFakeRecipeRepository(recipe))

	cook := 50
	res, err := service.UpdateRecipe(context.Background(), recipe.ID.String(), domain.UpdateRecipeRequest{
		CookTimeMinutes: &cook,
	}, authorID.String())
	require.NoError(t, err)

	assert.Equal(t, "Ramen", res.Title)
	assert.Equal(t, 10, res.PrepTimeMinutes)
	assert.Equal(t, 50, res.CookTimeMinutes)
	assert.Equal(t, 60, res.TotalMinutes)
	assert.Equal(t, 2, res.Servings)
}

func TestDeleteRecipeNonAuthorDenied(t *testing.T) {
	recipe := publishedRecipe(uuid.New(), "Paella")
	repo := newFakeRecipeRepository(recipe)
	service := newTestService(repo)

	err := service.DeleteRecipe(context.Background(), recipe.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeAccessDenied)

	_, err = repo.GetRecipeByID(context.Background(), recipe.ID.String())
	assert.NoError(t, err)
}

func TestDeleteRecipe(t *testing.T) {
	authorID := uuid.New()
	recipe := publishedRecipe(authorID, "Pierogi")
	repo := newFakeRecipeRepository(recipe)
	service := newTestService(repo)

	require.NoError(t, service.DeleteRecipe(context.Background(), recipe.ID.String(), authorID.String()))

	_, err := repo.GetRecipeByID(context.Background(), recipe.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetUserRecipesHidesDraftsFromOthers(t *testing.T) {
	authorID := uuid.New()
	published := publishedRecipe(authorID, "Public Dish")
	draft := &entities.Recipe{ID: uuid.New(), AuthorID: authorID, Title: "Secret Dish", IsPublished: false}
	repo := newFakeRecipeRepository(published, draft)
	service := newTestService(repo)

	res, err := service.GetUserRecipes(context.Background(), authorID.String(), uuid.New().String(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, res.Recipes, 1)

	res, err = service.GetUserRecipes(context.Background(), authorID.String(), authorID.String(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, res.Recipes, 2)
}

func TestGetShareURL(t *testing.T) {
	recipe := publishedRecipe(uuid.New(), "Baklava")
	service := newTestService(newFakeRecipeRepository(recipe))

	res, err := service.GetShareURL(context.Background(), recipe.ID.String(), "")
	require.NoError(t, err)

	assert.Equal(t, "Baklava", res.RecipeTitle)
	assert.Equal(t, "general", res.Platform)
	assert.Contains(t, res.ShareURL, recipe.ID.String())
}

func TestShareRecipe(t *testing.T) {
	recipe := publishedRecipe(uuid.New(), "Shakshuka")
	service := newTestService(newFakeRecipeRepository(recipe))

	res, err := service.ShareRecipe(context.Background(), recipe.ID.String(), uuid.New().String(), "twitter")
	require.NoError(t, err)

	assert.Equal(t, recipe.ID.String(), res.RecipeID)
	assert.Equal(t, "twitter", res.Platform)
	assert.Contains(t, res.ShareURL, recipe.ID.String())
	assert.False(t, res.SharedAt.IsZero())
}

func TestShareRecipeDefaultPlatform(t *testing.T) {
	recipe := publishedRecipe(uuid.New(), "Falafel")
	service := newTestService(newFakeRecipeRepository(recipe))

	res, err := service.ShareRecipe(context.Background(), recipe.ID.String(), uuid.New().String(), "")
	require.NoError(t, err)

	assert.Equal(t, "general", res.Platform)
}

func TestShareRecipeDraftHiddenFromOthers(t *testing.T) {
	author := uuid.New()
	draft := publishedRecipe(author, "Hidden Pie")
	draft.IsPublished = false
	service := newTestService(newFakeRecipeRepository(draft))

	_, err := service.ShareRecipe(context.Background(), draft.ID.String(), uuid.New().String(), "twitter")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	res, err := service.ShareRecipe(context.Background(), draft.ID.String(), author.String(), "twitter")
	require.NoError(t, err)
	assert.Equal(t, draft.ID.String(), res.RecipeID)
}

func TestShareRecipeUnknownRecipe(t *testing.T) {
	service := newTestService(newFakeRecipeRepository())

	_, err := service.ShareRecipe(context.Background(), uuid.New().String(), uuid.New().String(), "twitter")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
