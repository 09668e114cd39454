package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"yumzy-backend/domain"
	"yumzy-backend/entities"
	"yumzy-backend/internal/metrics"
	"yumzy-backend/internal/utils"
	"yumzy-backend/internal/utils/storage"
	"yumzy-backend/pkg/favorite"
	"yumzy-backend/pkg/social"
)

const similarRecipeLimit = 5

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, callerID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetUserRecipes(ctx context.Context, authorID string, callerID string, page, limit int) (domain.SearchRecipesResponse, error)
		UploadRecipeImage(ctx context.Context, recipeID string, userID string, fileHeader *multipart.FileHeader) (string, error)
		GetShareURL(ctx context.Context, recipeID string, platform string) (domain.ShareURLResponse, error)
		ShareRecipe(ctx context.Context, recipeID string, userID string, platform string) (domain.ShareRecipeResponse, error)
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		favoriteRepository favorite.FavoriteRepository
		ratingRepository   social.RatingRepository
		s3                 storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	favoriteRepository favorite.FavoriteRepository,
	ratingRepository social.RatingRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		favoriteRepository: favoriteRepository,
		ratingRepository:   ratingRepository,
		s3:                 s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	entity := &entities.Recipe{
		ID:              uuid.New(),
		AuthorID:        authorID,
		Title:           req.Title,
		Description:     req.Description,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		TotalMinutes:    req.PrepTimeMinutes + req.CookTimeMinutes,
		Servings:        req.Servings,
		DifficultyLevel: req.DifficultyLevel,
		CuisineType:     req.CuisineType,
		MealType:        req.MealType,
		IsVegetarian:    req.IsVegetarian,
		IsVegan:         req.IsVegan,
		IsGlutenFree:    req.IsGlutenFree,
		IsPublished:     published,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, entity, toIngredientInputs(req.Ingredients)); err != nil {
		return domain.RecipeResponse{}, err
	}

	logrus.WithFields(logrus.Fields{
		"recipe_id": entity.ID,
		"author_id": userID,
	}).Info("recipe created")

	created, err := s.recipeRepository.GetRecipeByID(ctx, entity.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return ToResponse(created), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, callerID string) (domain.RecipeDetailResponse, error) {
	entity, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	// Unpublished recipes are visible only to their author.
	if !entity.IsPublished && entity.AuthorID.String() != callerID {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeAccessDenied
	}

	res := ToResponse(entity)

	if callerID != "" {
		favorited, err := s.favoriteRepository.IsFavorited(ctx, callerID, recipeID)
		if err == nil {
			res.IsFavorited = favorited
		}
		if rating, err := s.ratingRepository.GetUserRating(ctx, callerID, recipeID); err == nil {
			value := rating.Rating
			res.UserRating = &value
		}
	}

	similar, err := s.recipeRepository.GetSimilarRecipes(ctx, entity, similarRecipeLimit)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	similarRes := make([]domain.RecipeResponse, 0, len(similar))
	for _, sim := range similar {
		similarRes = append(similarRes, ToResponse(sim))
	}

	s.trackView(recipeID)

	return domain.RecipeDetailResponse{
		RecipeResponse: res,
		SimilarRecipes: similarRes,
	}, nil
}

// trackView records the view from a detached goroutine. It is best-effort
// analytics: failures are logged and never fail the read that triggered it.
func (s *recipeService) trackView(recipeID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.recipeRepository.IncrementViewCount(ctx, recipeID); err != nil {
			logrus.WithField("recipe_id", recipeID).WithError(err).Warn("failed to track recipe view")
			return
		}
		metrics.RecipeViewsTotal.Inc()
	}()
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	entity, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if entity.AuthorID.String() != userID {
		return domain.RecipeResponse{}, domain.ErrRecipeAccessDenied
	}

	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.Instructions != nil {
		entity.Instructions = *req.Instructions
	}
	if req.PrepTimeMinutes != nil {
		entity.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		entity.CookTimeMinutes = *req.CookTimeMinutes
	}
	entity.TotalMinutes = entity.PrepTimeMinutes + entity.CookTimeMinutes
	if req.Servings != nil {
		entity.Servings = *req.Servings
	}
	if req.DifficultyLevel != nil {
		entity.DifficultyLevel = *req.DifficultyLevel
	}
	if req.CuisineType != nil {
		entity.CuisineType = *req.CuisineType
	}
	if req.MealType != nil {
		entity.MealType = *req.MealType
	}
	if req.IsVegetarian != nil {
		entity.IsVegetarian = *req.IsVegetarian
	}
	if req.IsVegan != nil {
		entity.IsVegan = *req.IsVegan
	}
	if req.IsGlutenFree != nil {
		entity.IsGlutenFree = *req.IsGlutenFree
	}
	if req.IsPublished != nil {
		entity.IsPublished = *req.IsPublished
	}

	replaceIngredients := req.Ingredients != nil
	if err := s.recipeRepository.UpdateRecipe(ctx, entity, toIngredientInputs(req.Ingredients), replaceIngredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	updated, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return ToResponse(updated), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	entity, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if entity.AuthorID.String() != userID {
		return domain.ErrRecipeAccessDenied
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"recipe_id": recipeID,
		"author_id": userID,
	}).Info("recipe deleted")
	return nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, authorID string, callerID string, page, limit int) (domain.SearchRecipesResponse, error) {
	if !utils.ValidPageWindow(page, limit) {
		return domain.SearchRecipesResponse{}, domain.ErrInvalidPagination
	}

	includeUnpublished := authorID == callerID
	recipes, count, err := s.recipeRepository.GetRecipesByAuthor(ctx, authorID, includeUnpublished, page, limit)
	if err != nil {
		return domain.SearchRecipesResponse{}, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, entity := range recipes {
		result = append(result, ToResponse(entity))
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

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, userID string, fileHeader *multipart.FileHeader) (string, error) {
	entity, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	if entity.AuthorID.String() != userID {
		return "", domain.ErrRecipeAccessDenied
	}

	key := fmt.Sprintf("recipes/%s/%s", recipeID, fileHeader.Filename)
	url, err := s.s3.UploadFile(ctx, key, fileHeader)
	if err != nil {
		return "", err
	}

	entity.ImageURL = url
	if err := s.recipeRepository.UpdateRecipe(ctx, entity, nil, false); err != nil {
		return "", err
	}

	return url, nil
}

func (s *recipeService) GetShareURL(ctx context.Context, recipeID string, platform string) (domain.ShareURLResponse, error) {
	entity, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShareURLResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ShareURLResponse{}, err
	}

	if platform == "" {
		platform = "general"
	}

	return domain.ShareURLResponse{
		RecipeID:    recipeID,
		RecipeTitle: entity.Title,
		ShareURL:    fmt.Sprintf("%s/recipes/%s", utils.GetConfig("APP_URL"), recipeID),
		Platform:    platform,
	}, nil
}

// ShareRecipe records that a user shared a recipe on a platform. Shares are
// logged rather than persisted.
func (s *recipeService) ShareRecipe(ctx context.Context, recipeID string, userID string, platform string) (domain.ShareRecipeResponse, error) {
	entity, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShareRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ShareRecipeResponse{}, err
	}
	if !entity.IsPublished && entity.AuthorID.String() != userID {
		return domain.ShareRecipeResponse{}, domain.ErrRecipeNotFound
	}

	if platform == "" {
		platform = "general"
	}

	logrus.WithFields(logrus.Fields{
		"recipe_id": recipeID,
		"platform":  platform,
		"user_id":   userID,
	}).Info("recipe shared")
	metrics.RecipeSharesTotal.WithLabelValues(platform).Inc()

	return domain.ShareRecipeResponse{
		RecipeID: recipeID,
		ShareURL: fmt.Sprintf("%s/recipes/%s", utils.GetConfig("APP_URL"), recipeID),
		Platform: platform,
		SharedAt: time.Now().UTC(),
	}, nil
}

func toIngredientInputs(ingredients []domain.IngredientRequest) []IngredientInput {
	inputs := make([]IngredientInput, 0, len(ingredients))
	for _, ing := range ingredients {
		inputs = append(inputs, IngredientInput{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Category: ing.Category,
		})
	}
	return inputs
}

// ToResponse maps a recipe entity to its API shape.
func ToResponse(entity *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:              entity.ID.String(),
		Title:           entity.Title,
		Description:     entity.Description,
		Instructions:    entity.Instructions,
		ImageURL:        entity.ImageURL,
		PrepTimeMinutes: entity.PrepTimeMinutes,
		CookTimeMinutes: entity.CookTimeMinutes,
		TotalMinutes:    entity.TotalMinutes,
		Servings:        entity.Servings,
		DifficultyLevel: entity.DifficultyLevel,
		CuisineType:     entity.CuisineType,
		MealType:        entity.MealType,
		IsVegetarian:    entity.IsVegetarian,
		IsVegan:         entity.IsVegan,
		IsGlutenFree:    entity.IsGlutenFree,
		IsPublished:     entity.IsPublished,
		ViewCount:       entity.ViewCount,
		FavoriteCount:   entity.FavoriteCount,
		RatingCount:     entity.RatingCount,
		AverageRating:   entity.AverageRating,
		AuthorID:        entity.AuthorID.String(),
		CreatedAt:       entity.CreatedAt,
	}

	if entity.Author != nil {
		res.AuthorUsername = entity.Author.Username
	}

	for _, ri := range entity.Ingredients {
		item := domain.RecipeIngredientResponse{
			ID:       ri.IngredientID.String(),
			Quantity: ri.Quantity,
			Unit:     ri.Unit,
		}
		if ri.Ingredient != nil {
			item.Name = ri.Ingredient.Name
			item.Category = ri.Ingredient.Category
		}
		res.Ingredients = append(res.Ingredients, item)
	}

	return res
}
