package social

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yumzy-backend/entities"
)

type (
	RatingRepository interface {
		UpsertRating(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID, value int, comment string) (*entities.Rating, error)
		DeleteRating(ctx context.Context, ratingID string) error
		GetRatingByID(ctx context.Context, ratingID string) (*entities.Rating, error)
		GetRecipeRatings(ctx context.Context, recipeID string, page, limit int) ([]*entities.Rating, int64, error)
		GetUserRating(ctx context.Context, userID, recipeID string) (*entities.Rating, error)
		GetUserRatingsForRecipes(ctx context.Context, userID string, recipeIDs []uuid.UUID) (map[uuid.UUID]int, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating inserts or updates the caller's rating and recomputes the
// recipe's average_rating and rating_count from the ratings table, all in
// one transaction. The recipe row is locked first so concurrent submissions
// for the same recipe serialize instead of overwriting each other's
// aggregate.
func (r *ratingRepository) UpsertRating(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID, value int, comment string) (*entities.Rating, error) {
	var rating entities.Rating

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", recipeID).
			First(&recipe).Error; err != nil {
			return err
		}

		err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			First(&rating).Error
		switch {
		case err == nil:
			rating.Rating = value
			rating.Comment = comment
			if err := tx.Save(&rating).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating = entities.Rating{
				ID:       uuid.New(),
				UserID:   userID,
				RecipeID: recipeID,
				Rating:   value,
				Comment:  comment,
			}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return syncRatingAggregate(tx, recipeID)
	})
	if err != nil {
		return nil, err
	}

	return &rating, nil
}

func (r *ratingRepository) DeleteRating(ctx context.Context, ratingID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rating entities.Rating
		if err := tx.Where("id = ?", ratingID).First(&rating).Error; err != nil {
			return err
		}

		var recipe entities.Recipe
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", rating.RecipeID).
			First(&recipe).Error; err != nil {
			return err
		}

		if err := tx.Delete(&rating).Error; err != nil {
			return err
		}

		return syncRatingAggregate(tx, rating.RecipeID)
	})
}

// syncRatingAggregate recomputes the aggregate from the source of truth
// rather than adjusting it incrementally.
func syncRatingAggregate(tx *gorm.DB, recipeID uuid.UUID) error {
	var agg struct {
		Avg float64
		Cnt int64
	}
	if err := tx.Model(&entities.Rating{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as cnt").
		Where("recipe_id = ?", recipeID).
		Scan(&agg).Error; err != nil {
		return err
	}

	return tx.Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Updates(map[string]interface{}{
			"average_rating": agg.Avg,
			"rating_count":   agg.Cnt,
		}).Error
}

func (r *ratingRepository) GetRatingByID(ctx context.Context, ratingID string) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).Where("id = ?", ratingID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetRecipeRatings(ctx context.Context, recipeID string, page, limit int) ([]*entities.Rating, int64, error) {
	var ratings []*entities.Rating
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Rating{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&ratings).Error; err != nil {
		return nil, 0, err
	}

	return ratings, count, nil
}

func (r *ratingRepository) GetUserRating(ctx context.Context, userID, recipeID string) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetUserRatingsForRecipes returns the caller's ratings for the given
// recipes in one query, keyed by recipe id.
func (r *ratingRepository) GetUserRatingsForRecipes(ctx context.Context, userID string, recipeIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	result := make(map[uuid.UUID]int, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	var ratings []entities.Rating
	if err := r.db.WithContext(ctx).
		Select("recipe_id", "rating").
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Find(&ratings).Error; err != nil {
		return nil, err
	}

	for _, rating := range ratings {
		result[rating.RecipeID] = rating.Rating
	}
	return result, nil
}
