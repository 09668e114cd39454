package social

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yumzy-backend/domain"
	"yumzy-backend/internal/metrics"
	"yumzy-backend/internal/utils"
)

type (
	SocialService interface {
		SubmitRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.RatingResponse, error)
		DeleteRating(ctx context.Context, ratingID, userID string) error
		GetRecipeRatings(ctx context.Context, recipeID string, page, limit int) (domain.RecipeRatingsResponse, error)
	}

	socialService struct {
		ratingRepository RatingRepository
	}
)

func NewSocialService(ratingRepository RatingRepository) SocialService {
	return &socialService{ratingRepository: ratingRepository}
}

func (s *socialService) SubmitRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.RatingResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.RatingResponse{}, domain.ErrRatingOutOfRange
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RatingResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.RatingResponse{}, domain.ErrParseUUID
	}

	rating, err := s.ratingRepository.UpsertRating(ctx, userUUID, recipeUUID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RatingResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RatingResponse{}, err
	}

	metrics.RatingsSubmittedTotal.Inc()

	return domain.RatingResponse{
		ID:        rating.ID.String(),
		RecipeID:  rating.RecipeID.String(),
		UserID:    rating.UserID.String(),
		Rating:    rating.Rating,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}, nil
}

func (s *socialService) DeleteRating(ctx context.Context, ratingID, userID string) error {
	rating, err := s.ratingRepository.GetRatingByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRatingNotFound
		}
		return err
	}

	if rating.UserID.String() != userID {
		return domain.ErrRatingAccessDenied
	}

	return s.ratingRepository.DeleteRating(ctx, ratingID)
}

func (s *socialService) GetRecipeRatings(ctx context.Context, recipeID string, page, limit int) (domain.RecipeRatingsResponse, error) {
	if !utils.ValidPageWindow(page, limit) {
		return domain.RecipeRatingsResponse{}, domain.ErrInvalidPagination
	}

	ratings, count, err := s.ratingRepository.GetRecipeRatings(ctx, recipeID, page, limit)
	if err != nil {
		return domain.RecipeRatingsResponse{}, err
	}

	result := make([]domain.RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		res := domain.RatingResponse{
			ID:        rating.ID.String(),
			RecipeID:  rating.RecipeID.String(),
			UserID:    rating.UserID.String(),
			Rating:    rating.Rating,
			Comment:   rating.Comment,
			CreatedAt: rating.CreatedAt,
			UpdatedAt: rating.UpdatedAt,
		}
		if rating.User != nil {
			res.Username = rating.User.Username
		}
		result = append(result, res)
	}

	totalPages := utils.TotalPages(count, limit)

	return domain.RecipeRatingsResponse{
		Ratings: result,
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
