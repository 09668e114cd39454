package recipe

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yumzy-backend/entities"
)

type (
	// IngredientInput carries one ingredient line of a recipe write.
	IngredientInput struct {
		Name     string
		Quantity string
		Unit     string
		Category string
	}

	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []IngredientInput) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []IngredientInput, replaceIngredients bool) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipesByAuthor(ctx context.Context, authorID string, includeUnpublished bool, page, limit int) ([]*entities.Recipe, int64, error)
		GetSimilarRecipes(ctx context.Context, recipe *entities.Recipe, limit int) ([]*entities.Recipe, error)
		IncrementViewCount(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []IngredientInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return attachIngredients(tx, recipe.ID, ingredients)
	})
}

// attachIngredients resolves each name against the shared ingredients table,
// creating missing ones, and writes the join rows.
func attachIngredients(tx *gorm.DB, recipeID uuid.UUID, ingredients []IngredientInput) error {
	for _, input := range ingredients {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			continue
		}

		var ingredient entities.Ingredient
		err := tx.Where("LOWER(name) = LOWER(?)", name).First(&ingredient).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ingredient = entities.Ingredient{
				ID:       uuid.New(),
				Name:     name,
				Category: input.Category,
			}
			if err := tx.Create(&ingredient).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		join := entities.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			IngredientID: ingredient.ID,
			Quantity:     input.Quantity,
			Unit:         input.Unit,
		}
		if err := tx.Create(&join).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []IngredientInput, replaceIngredients bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Author", "Ingredients").Save(recipe).Error; err != nil {
			return err
		}
		if !replaceIngredients {
			return nil
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return attachIngredients(tx, recipe.ID, ingredients)
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) GetRecipesByAuthor(ctx context.Context, authorID string, includeUnpublished bool, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("author_id = ?", authorID)
	if !includeUnpublished {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// GetSimilarRecipes returns published recipes sharing the cuisine or meal
// type, best rated first. When that pass comes up short the match broadens
// to cuisine only, filling the remainder without duplicates.
func (r *recipeRepository) GetSimilarRecipes(ctx context.Context, recipe *entities.Recipe, limit int) ([]*entities.Recipe, error) {
	var similar []*entities.Recipe

	if err := r.db.WithContext(ctx).
		Where("id != ? AND is_published = ?", recipe.ID, true).
		Where("cuisine_type = ? OR meal_type = ?", recipe.CuisineType, recipe.MealType).
		Order("average_rating desc").
		Limit(limit).
		Find(&similar).Error; err != nil {
		return nil, err
	}

	if len(similar) < limit && recipe.CuisineType != "" {
		exclude := make([]uuid.UUID, 0, len(similar)+1)
		exclude = append(exclude, recipe.ID)
		for _, s := range similar {
			exclude = append(exclude, s.ID)
		}

		var broadened []*entities.Recipe
		if err := r.db.WithContext(ctx).
			Where("id NOT IN ? AND is_published = ?", exclude, true).
			Where("cuisine_type = ?", recipe.CuisineType).
			Order("average_rating desc").
			Limit(limit - len(similar)).
			Find(&broadened).Error; err != nil {
			return nil, err
		}
		similar = append(similar, broadened...)
	}

	return similar, nil
}

// IncrementViewCount bumps the counter atomically in the database so no
// read-modify-write race can lose views.
func (r *recipeRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
