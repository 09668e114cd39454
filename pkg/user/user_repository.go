package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"yumzy-backend/entities"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		CheckUsernameExists(ctx context.Context, username string) (bool, error)
		CheckEmailExists(ctx context.Context, email string) (bool, error)
		GetUserStats(ctx context.Context, userID string) (*UserStats, error)
		GetUserAnalytics(ctx context.Context, userID string) (*UserAnalytics, error)
	}

	UserStats struct {
		RecipeCount           int64
		FavoriteCount         int64
		RatingCount           int64
		AverageRatingReceived float64
	}

	// UserAnalytics extends UserStats with reach numbers across the user's
	// published recipes. Private to the account owner.
	UserAnalytics struct {
		TotalRecipes           int64
		TotalFavoritesGiven    int64
		TotalRatingsGiven      int64
		TotalViewsReceived     int64
		TotalFavoritesReceived int64
		MostPopularRecipeTitle string
		MostPopularRecipeViews int64
		FavoriteCuisine        string
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) CheckUsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	stats := &UserStats{}

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("author_id = ? AND is_published = ?", userID, true).
		Count(&stats.RecipeCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Favorite{}).
		Where("user_id = ?", userID).
		Count(&stats.FavoriteCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Rating{}).
		Where("user_id = ?", userID).
		Count(&stats.RatingCount).Error; err != nil {
		return nil, err
	}

	var avg *float64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Select("AVG(average_rating)").
		Where("author_id = ? AND is_published = ? AND rating_count > 0", userID, true).
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AverageRatingReceived = *avg
	}

	return stats, nil
}

func (r *userRepository) GetUserAnalytics(ctx context.Context, userID string) (*UserAnalytics, error) {
	analytics := &UserAnalytics{}

	published := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("author_id = ? AND is_published = ?", userID, true)

	if err := published.Session(&gorm.Session{}).Count(&analytics.TotalRecipes).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Favorite{}).
		Where("user_id = ?", userID).
		Count(&analytics.TotalFavoritesGiven).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Rating{}).
		Where("user_id = ?", userID).
		Count(&analytics.TotalRatingsGiven).Error; err != nil {
		return nil, err
	}

	if err := published.Session(&gorm.Session{}).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&analytics.TotalViewsReceived).Error; err != nil {
		return nil, err
	}

	if err := published.Session(&gorm.Session{}).
		Select("COALESCE(SUM(favorite_count), 0)").
		Scan(&analytics.TotalFavoritesReceived).Error; err != nil {
		return nil, err
	}

	var mostViewed entities.Recipe
	err := published.Session(&gorm.Session{}).
		Order("view_count DESC").
		First(&mostViewed).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		analytics.MostPopularRecipeTitle = mostViewed.Title
		analytics.MostPopularRecipeViews = mostViewed.ViewCount
	}

	var cuisines []string
	if err := published.Session(&gorm.Session{}).
		Where("cuisine_type <> ''").
		Group("cuisine_type").
		Order("COUNT(*) DESC").
		Limit(1).
		Pluck("cuisine_type", &cuisines).Error; err != nil {
		return nil, err
	}
	if len(cuisines) > 0 {
		analytics.FavoriteCuisine = cuisines[0]
	}

	return analytics, nil
}
