package search

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"yumzy-backend/domain"
	"yumzy-backend/entities"
)

const (
	relevanceScore = "(recipes.average_rating * recipes.rating_count + recipes.view_count)"

	// Trending weighs favorites and ratings heavier than raw views and only
	// considers recently created recipes.
	trendingScore      = "(recipes.view_count + recipes.favorite_count * 2 + recipes.rating_count * 3)"
	trendingWindowDays = 37
)

type (
	SearchRepository interface {
		SearchRecipes(ctx context.Context, filters domain.SearchFilters, callerID string, page, limit int) ([]*entities.Recipe, int64, error)
		SearchIngredients(ctx context.Context, query string, limit int) ([]*entities.Ingredient, error)
		AutocompleteRecipes(ctx context.Context, query string, limit int) ([]string, error)
		AutocompleteIngredients(ctx context.Context, query string, limit int) ([]string, error)
		AutocompleteCuisines(ctx context.Context, query string, limit int) ([]string, error)
		GetTrendingRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetPopularCuisines(ctx context.Context, limit int) ([]PopularTerm, error)
		GetPopularIngredients(ctx context.Context, limit int) ([]PopularTerm, error)
	}

	// PopularTerm is a grouped count row for popular-search suggestions.
	PopularTerm struct {
		Term  string `gorm:"column:term"`
		Count int64  `gorm:"column:term_count"`
	}

	searchRepository struct {
		db *gorm.DB
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) SearchRecipes(ctx context.Context, filters domain.SearchFilters, callerID string, page, limit int) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	query = r.applyVisibility(query, callerID)
	query = r.applyFilters(query, filters)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if filters.HasRelevanceSort() {
		query = query.Order(relevanceScore + " DESC, recipes.id ASC")
	} else {
		query = query.Order("recipes.created_at DESC")
	}

	var recipes []*entities.Recipe
	offset := (page - 1) * limit
	err := query.
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// applyVisibility restricts results to published recipes, except that a
// caller always sees their own drafts.
func (r *searchRepository) applyVisibility(query *gorm.DB, callerID string) *gorm.DB {
	if callerID == "" {
		return query.Where("recipes.is_published = ?", true)
	}
	return query.Where("recipes.is_published = ? OR recipes.author_id = ?", true, callerID)
}

func (r *searchRepository) applyFilters(query *gorm.DB, filters domain.SearchFilters) *gorm.DB {
	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where("recipes.title ILIKE ? OR recipes.description ILIKE ?", pattern, pattern)
	}

	if len(filters.Ingredients) > 0 {
		names := make([]string, 0, len(filters.Ingredients))
		for _, name := range filters.Ingredients {
			names = append(names, strings.ToLower(strings.TrimSpace(name)))
		}
		sub := r.db.Table("recipe_ingredients").
			Select("recipe_ingredients.recipe_id").
			Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
			Where("LOWER(ingredients.name) IN ?", names)
		query = query.Where("recipes.id IN (?)", sub)
	}

	if filters.CuisineType != "" {
		query = query.Where("recipes.cuisine_type = ?", filters.CuisineType)
	}
	if filters.MealType != "" {
		query = query.Where("recipes.meal_type = ?", filters.MealType)
	}
	if filters.DifficultyLevel != "" {
		query = query.Where("recipes.difficulty_level = ?", filters.DifficultyLevel)
	}
	if filters.MaxPrepTime > 0 {
		query = query.Where("recipes.prep_time_minutes <= ?", filters.MaxPrepTime)
	}
	if filters.MaxCookTime > 0 {
		query = query.Where("recipes.cook_time_minutes <= ?", filters.MaxCookTime)
	}
	if filters.IsVegetarian != nil {
		query = query.Where("recipes.is_vegetarian = ?", *filters.IsVegetarian)
	}
	if filters.IsVegan != nil {
		query = query.Where("recipes.is_vegan = ?", *filters.IsVegan)
	}
	if filters.IsGlutenFree != nil {
		query = query.Where("recipes.is_gluten_free = ?", *filters.IsGlutenFree)
	}
	if filters.MinRating > 0 {
		query = query.Where("recipes.average_rating >= ? AND recipes.rating_count > 0", filters.MinRating)
	}

	return query
}

func (r *searchRepository) SearchIngredients(ctx context.Context, query string, limit int) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *searchRepository) AutocompleteRecipes(ctx context.Context, query string, limit int) ([]string, error) {
	var titles []string
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("is_published = ? AND title ILIKE ?", true, "%"+query+"%").
		Order("title ASC").
		Limit(limit).
		Distinct().
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

func (r *searchRepository) AutocompleteIngredients(ctx context.Context, query string, limit int) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Distinct().
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *searchRepository) AutocompleteCuisines(ctx context.Context, query string, limit int) ([]string, error) {
	var cuisines []string
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("is_published = ? AND cuisine_type ILIKE ?", true, "%"+query+"%").
		Order("cuisine_type ASC").
		Limit(limit).
		Distinct().
		Pluck("cuisine_type", &cuisines).Error
	if err != nil {
		return nil, err
	}
	return cuisines, nil
}

func (r *searchRepository) GetTrendingRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -trendingWindowDays)

	var recipes []*entities.Recipe
	err := r.db.WithContext(ctx).
		Where("is_published = ? AND created_at >= ?", true, cutoff).
		Order(trendingScore + " DESC, recipes.id ASC").
		Preload("Author").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *searchRepository) GetPopularCuisines(ctx context.Context, limit int) ([]PopularTerm, error) {
	var terms []PopularTerm
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Select("cuisine_type AS term, COUNT(*) AS term_count").
		Where("is_published = ? AND cuisine_type <> ''", true).
		Group("cuisine_type").
		Order("term_count DESC").
		Limit(limit).
		Scan(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *searchRepository) GetPopularIngredients(ctx context.Context, limit int) ([]PopularTerm, error) {
	var terms []PopularTerm
	err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Select("ingredients.name AS term, COUNT(recipe_ingredients.recipe_id) AS term_count").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
		Group("ingredients.name").
		Order("term_count DESC").
		Limit(limit).
		Scan(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}
