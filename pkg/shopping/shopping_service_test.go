package shopping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"yumzy-backend/domain"
	"yumzy-backend/entities"
)

type fakeShoppingRepository struct {
	lists       map[uuid.UUID]*entities.ShoppingList
	items       map[uuid.UUID]*entities.ShoppingListItem
	ingredients map[string][]*entities.RecipeIngredient
}

func newFakeShoppingRepository() *fakeShoppingRepository {
	return &fakeShoppingRepository{
		lists:       map[uuid.UUID]*entities.ShoppingList{},
		items:       map[uuid.UUID]*entities.ShoppingListItem{},
		ingredients: map[string][]*entities.RecipeIngredient{},
	}
}

func (f *fakeShoppingRepository) CreateShoppingList(_ context.Context, list *entities.ShoppingList) error {
	f.lists[list.ID] = list
	return nil
}

func (f *fakeShoppingRepository) GetShoppingListByID(_ context.Context, id string) (*entities.ShoppingList, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	list, ok := f.lists[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	list.Items = nil
	for _, item := range f.items {
		if item.ShoppingListID == list.ID {
			list.Items = append(list.Items, item)
		}
	}
	return list, nil
}

func (f *fakeShoppingRepository) GetUserShoppingLists(_ context.Context, userID string) ([]*entities.ShoppingList, error) {
	var result []*entities.ShoppingList
	for _, list := range f.lists {
		if list.UserID.String() == userID {
			result = append(result, list)
		}
	}
	return result, nil
}

func (f *fakeShoppingRepository) UpdateShoppingList(_ context.Context, list *entities.ShoppingList) error {
	f.lists[list.ID] = list
	return nil
}

func (f *fakeShoppingRepository) DeleteShoppingList(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	for itemID, item := range f.items {
		if item.ShoppingListID == parsed {
			delete(f.items, itemID)
		}
	}
	delete(f.lists, parsed)
	return nil
}

func (f *fakeShoppingRepository) CreateListItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeShoppingRepository) CreateListItems(_ context.Context, items []*entities.ShoppingListItem) error {
	for _, item := range items {
		f.items[item.ID] = item
	}
	return nil
}

func (f *fakeShoppingRepository) GetListItemByID(_ context.Context, id string) (*entities.ShoppingListItem, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	item, ok := f.items[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeShoppingRepository) UpdateListItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeShoppingRepository) DeleteListItem(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(f.items, parsed)
	return nil
}

func (f *fakeShoppingRepository) GetRecipeIngredients(_ context.Context, recipeID string) ([]*entities.RecipeIngredient, error) {
	return f.ingredients[recipeID], nil
}

type fakeRecipeFinder struct {
	recipes map[string]*entities.Recipe
}

func (f *fakeRecipeFinder) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func newTestService(repo *fakeShoppingRepository, finder *fakeRecipeFinder) ShoppingService {
	if finder == nil {
		finder = &fakeRecipeFinder{recipes: map[string]*entities.Recipe{}}
	}
	return NewShoppingService(repo, finder)
}

func TestCreateAndGetShoppingList(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := newTestService(repo, nil)
	userID := uuid.New().String()

	created, err := service.CreateShoppingList(context.Background(), domain.CreateShoppingListRequest{Name: "Weekly groceries"}, userID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly groceries", created.Name)

	fetched, err := service.GetShoppingList(context.Background(), created.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestGetShoppingListOwnerOnly(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := newTestService(repo, nil)

	created, err := service.CreateShoppingList(context.Background(), domain.CreateShoppingListRequest{Name: "Mine"}, uuid.New().String())
	require.NoError(t, err)

	_, err = service.GetShoppingList(context.Background(), created.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrShoppingListAccessDenied)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestGetShoppingListNotFound(t *testing.T) {
	service := newTestService(newFakeShoppingRepository(), nil)

	_, err := service.GetShoppingList(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrShoppingListNotFound)
}

func TestAddAndToggleListItem(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := newTestService(repo, nil)
	userID := uuid.New().String()

	list, err := service.CreateShoppingList(context.Background(), domain.CreateShoppingListRequest{Name: "Dinner"}, userID)
	require.NoError(t, err)

	item, err := service.AddListItem(context.Background(), list.ID, domain.ShoppingListItemRequest{
		Name:     "Garlic",
		Quantity: "3",
		Unit:     "cloves",
	}, userID)
	require.NoError(t, err)
	assert.False(t, item.IsPurchased)

	purchased := true
	updated, err := service.UpdateListItem(context.Background(), list.ID, item.ID, domain.UpdateShoppingListItemRequest{
		IsPurchased: &purchased,
	}, userID)
	require.NoError(t, err)
	assert.True(t, updated.IsPurchased)
	assert.Equal(t, "Garlic", updated.Name)
}

func TestUpdateListItemFromOtherList(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := newTestService(repo, nil)
	userID := uuid.New().String()

	first, err := service.CreateShoppingList(context.Background(), domain.CreateShoppingListRequest{Name: "First"}, userID)
	require.NoError(t, err)
	second, err := service.CreateShoppingList(context.Background(), domain.CreateShoppingListRequest{Name: "Second"}, userID)
	require.NoError(t, err)

	item, err := service.AddListItem(context.Background(), first.ID, domain.ShoppingListItemRequest{Name: "Salt"}, userID)
	require.NoError(t, err)

	purchased := true
	_, err = service.UpdateListItem(context.Background(), second.ID, item.ID, domain.UpdateShoppingListItemRequest{
		IsPurchased: &purchased,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrShoppingListItemNotFound)
}

func TestRemoveListItem(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := newTestService(repo, nil)
	userID := uuid.New().String()

	list, err := service.CreateShoppingList(context.Background(), domain.CreateShoppingListRequest{Name: "Party"}, userID)
	require.NoError(t, err)
	item, err := service.AddListItem(context.Background(), list.ID, domain.ShoppingListItemRequest{Name: "Chips"}, userID)
	require.NoError(t, err)

	require.NoError(t, service.RemoveListItem(context.Background(), list.ID, item.ID, userID))

	fetched, err := service.GetShoppingList(context.Background(), list.ID, userID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Items)
}

func TestDeleteShoppingListOwnerOnly(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := newTestService(repo, nil)
	ownerID := uuid.New().String()

	list, err := service.CreateShoppingList(context.Background(), domain.CreateShoppingListRequest{Name: "Mine"}, ownerID)
	require.NoError(t, err)

	err = service.DeleteShoppingList(context.Background(), list.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrShoppingListAccessDenied)

	require.NoError(t, service.DeleteShoppingList(context.Background(), list.ID, ownerID))

	_, err = service.GetShoppingList(context.Background(), list.ID, ownerID)
	assert.ErrorIs(t, err, domain.ErrShoppingListNotFound)
}

func TestCreateFromRecipe(t *testing.T) {
	repo := newFakeShoppingRepository()
	recipe := &entities.Recipe{ID: uuid.New(), AuthorID: uuid.New(), Title: "Minestrone", IsPublished: true}
	finder := &fakeRecipeFinder{recipes: map[string]*entities.Recipe{recipe.ID.String(): recipe}}

	repo.ingredients[recipe.ID.String()] = []*entities.RecipeIngredient{
		{
			RecipeID:   recipe.ID,
			Quantity:   "2",
			Unit:       "pcs",
			Ingredient: &entities.Ingredient{ID: uuid.New(), Name: "Carrot", Category: "Vegetables"},
		},
		{
			RecipeID:   recipe.ID,
			Quantity:   "400",
			Unit:       "g",
			Ingredient: &entities.Ingredient{ID: uuid.New(), Name: "Beans", Category: "Legumes"},
		},
	}

	service := newTestService(repo, finder)

	res, err := service.CreateFromRecipe(context.Background(), recipe.ID.String(), uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, "Shopping for Minestrone", res.Name)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Carrot", res.Items[0].Name)
	assert.Equal(t, "Vegetables", res.Items[0].Category)
	assert.Equal(t, "2", res.Items[0].Quantity)
}

func TestCreateFromRecipeHidesDrafts(t *testing.T) {
	repo := newFakeShoppingRepository()
	draft := &entities.Recipe{ID: uuid.New(), AuthorID: uuid.New(), Title: "Hidden", IsPublished: false}
	finder := &fakeRecipeFinder{recipes: map[string]*entities.Recipe{draft.ID.String(): draft}}
	service := newTestService(repo, finder)

	_, err := service.CreateFromRecipe(context.Background(), draft.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCreateFromRecipeUnknownRecipe(t *testing.T) {
	service := newTestService(newFakeShoppingRepository(), nil)

	_, err := service.CreateFromRecipe(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
