package shopping

import (
	"context"

	"gorm.io/gorm"

	"yumzy-backend/entities"
)

type (
	ShoppingRepository interface {
		CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error
		GetShoppingListByID(ctx context.Context, id string) (*entities.ShoppingList, error)
		GetUserShoppingLists(ctx context.Context, userID string) ([]*entities.ShoppingList, error)
		UpdateShoppingList(ctx context.Context, list *entities.ShoppingList) error
		DeleteShoppingList(ctx context.Context, id string) error
		CreateListItem(ctx context.Context, item *entities.ShoppingListItem) error
		CreateListItems(ctx context.Context, items []*entities.ShoppingListItem) error
		GetListItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error)
		UpdateListItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteListItem(ctx context.Context, id string) error
		GetRecipeIngredients(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingRepository) GetShoppingListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("shopping_list_items.created_at ASC")
		}).
		Where("id = ?", id).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingRepository) GetUserShoppingLists(ctx context.Context, userID string) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("shopping_list_items.created_at ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingRepository) UpdateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Omit("Items", "User").Save(list).Error
}

func (r *shoppingRepository) DeleteShoppingList(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", id).Delete(&entities.ShoppingListItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.ShoppingList{}).Error
	})
}

func (r *shoppingRepository) CreateListItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) CreateListItems(ctx context.Context, items []*entities.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *shoppingRepository) GetListItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) UpdateListItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Omit("ShoppingList").Save(item).Error
}

func (r *shoppingRepository) DeleteListItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingRepository) GetRecipeIngredients(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error) {
	var joins []*entities.RecipeIngredient
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&joins).Error
	if err != nil {
		return nil, err
	}
	return joins, nil
}
