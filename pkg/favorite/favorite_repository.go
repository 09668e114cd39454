package favorite

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yumzy-backend/entities"
)

type (
	FavoriteRepository interface {
		AddFavorite(ctx context.Context, favorite *entities.Favorite) error
		RemoveFavorite(ctx context.Context, userID, recipeID string) error
		GetFavorite(ctx context.Context, userID, recipeID string) (*entities.Favorite, error)
		IsFavorited(ctx context.Context, userID, recipeID string) (bool, error)
		GetUserFavorites(ctx context.Context, userID string, page, limit int) ([]*entities.Favorite, int64, error)
		GetFavoritedRecipeIDs(ctx context.Context, userID string, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// AddFavorite inserts the favorite row and refreshes the recipe's
// favorite_count from the favorites table inside one transaction, so
// concurrent toggles cannot drift the counter.
func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(favorite).Error; err != nil {
			return err
		}
		return syncFavoriteCount(tx, favorite.RecipeID)
	})
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		return syncFavoriteCount(tx, recipeUUID)
	})
}

func syncFavoriteCount(tx *gorm.DB, recipeID uuid.UUID) error {
	var count int64
	if err := tx.Model(&entities.Favorite{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Update("favorite_count", count).Error
}

func (r *favoriteRepository) GetFavorite(ctx context.Context, userID, recipeID string) (*entities.Favorite, error) {
	var favorite entities.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) IsFavorited(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) GetUserFavorites(ctx context.Context, userID string, page, limit int) ([]*entities.Favorite, int64, error) {
	var favorites []*entities.Favorite
	var count int64
	offset := (page - 1) * limit

	base := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Joins("JOIN recipes ON recipes.id = favorites.recipe_id").
		Where("favorites.user_id = ? AND recipes.is_published = ?", userID, true)

	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := base.
		Preload("Recipe").
		Offset(offset).
		Limit(limit).
		Order("favorites.created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, 0, err
	}

	return favorites, count, nil
}

// GetFavoritedRecipeIDs returns which of the given recipes the user has
// favorited in a single query, so list endpoints never look up per row.
func (r *favoriteRepository) GetFavoritedRecipeIDs(ctx context.Context, userID string, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
