package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yumzy-backend/domain"
	"yumzy-backend/entities"
)

type (
	// RecipeFinder is the slice of the recipe repository this package needs
	// when populating a list from a recipe.
	RecipeFinder interface {
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
	}

	ShoppingService interface {
		CreateShoppingList(ctx context.Context, req domain.CreateShoppingListRequest, userID string) (domain.ShoppingListResponse, error)
		GetUserShoppingLists(ctx context.Context, userID string) ([]domain.ShoppingListResponse, error)
		GetShoppingList(ctx context.Context, listID string, userID string) (domain.ShoppingListResponse, error)
		UpdateShoppingList(ctx context.Context, listID string, req domain.UpdateShoppingListRequest, userID string) (domain.ShoppingListResponse, error)
		DeleteShoppingList(ctx context.Context, listID string, userID string) error
		AddListItem(ctx context.Context, listID string, req domain.ShoppingListItemRequest, userID string) (domain.ShoppingListItemResponse, error)
		UpdateListItem(ctx context.Context, listID, itemID string, req domain.UpdateShoppingListItemRequest, userID string) (domain.ShoppingListItemResponse, error)
		RemoveListItem(ctx context.Context, listID, itemID string, userID string) error
		CreateFromRecipe(ctx context.Context, recipeID string, userID string) (domain.ShoppingListResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		recipeFinder       RecipeFinder
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, recipeFinder RecipeFinder) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		recipeFinder:       recipeFinder,
	}
}

func (s *shoppingService) CreateShoppingList(ctx context.Context, req domain.CreateShoppingListRequest, userID string) (domain.ShoppingListResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	list := &entities.ShoppingList{
		ID:     uuid.New(),
		UserID: ownerID,
		Name:   req.Name,
	}
	if err := s.shoppingRepository.CreateShoppingList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toListResponse(list), nil
}

func (s *shoppingService) GetUserShoppingLists(ctx context.Context, userID string) ([]domain.ShoppingListResponse, error) {
	lists, err := s.shoppingRepository.GetUserShoppingLists(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ShoppingListResponse, 0, len(lists))
	for _, list := range lists {
		result = append(result, toListResponse(list))
	}
	return result, nil
}

func (s *shoppingService) GetShoppingList(ctx context.Context, listID string, userID string) (domain.ShoppingListResponse, error) {
	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingService) UpdateShoppingList(ctx context.Context, listID string, req domain.UpdateShoppingListRequest, userID string) (domain.ShoppingListResponse, error) {
	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list.Name = req.Name
	if err := s.shoppingRepository.UpdateShoppingList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingService) DeleteShoppingList(ctx context.Context, listID string, userID string) error {
	if _, err := s.ownedList(ctx, listID, userID); err != nil {
		return err
	}
	return s.shoppingRepository.DeleteShoppingList(ctx, listID)
}

func (s *shoppingService) AddListItem(ctx context.Context, listID string, req domain.ShoppingListItemRequest, userID string) (domain.ShoppingListItemResponse, error) {
	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	item := &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: list.ID,
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Category:       req.Category,
	}
	if err := s.shoppingRepository.CreateListItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *shoppingService) UpdateListItem(ctx context.Context, listID, itemID string, req domain.UpdateShoppingListItemRequest, userID string) (domain.ShoppingListItemResponse, error) {
	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	item, err := s.listItem(ctx, list, itemID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsPurchased != nil {
		item.IsPurchased = *req.IsPurchased
	}

	if err := s.shoppingRepository.UpdateListItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *shoppingService) RemoveListItem(ctx context.Context, listID, itemID string, userID string) error {
	list, err := s.ownedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	item, err := s.listItem(ctx, list, itemID)
	if err != nil {
		return err
	}
	return s.shoppingRepository.DeleteListItem(ctx, item.ID.String())
}

func (s *shoppingService) CreateFromRecipe(ctx context.Context, recipeID string, userID string) (domain.ShoppingListResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	targetRecipe, err := s.recipeFinder.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ShoppingListResponse{}, err
	}
	if !targetRecipe.IsPublished && targetRecipe.AuthorID != ownerID {
		return domain.ShoppingListResponse{}, domain.ErrRecipeNotFound
	}

	list := &entities.ShoppingList{
		ID:     uuid.New(),
		UserID: ownerID,
		Name:   "Shopping for " + targetRecipe.Title,
	}
	if err := s.shoppingRepository.CreateShoppingList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	joins, err := s.shoppingRepository.GetRecipeIngredients(ctx, recipeID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	items := make([]*entities.ShoppingListItem, 0, len(joins))
	for _, join := range joins {
		item := &entities.ShoppingListItem{
			ID:             uuid.New(),
			ShoppingListID: list.ID,
			Quantity:       join.Quantity,
			Unit:           join.Unit,
		}
		if join.Ingredient != nil {
			item.Name = join.Ingredient.Name
			item.Category = join.Ingredient.Category
		}
		items = append(items, item)
	}
	if err := s.shoppingRepository.CreateListItems(ctx, items); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list.Items = items
	return toListResponse(list), nil
}

func (s *shoppingService) ownedList(ctx context.Context, listID string, userID string) (*entities.ShoppingList, error) {
	list, err := s.shoppingRepository.GetShoppingListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingListNotFound
		}
		return nil, err
	}
	if list.UserID.String() != userID {
		return nil, domain.ErrShoppingListAccessDenied
	}
	return list, nil
}

func (s *shoppingService) listItem(ctx context.Context, list *entities.ShoppingList, itemID string) (*entities.ShoppingListItem, error) {
	item, err := s.shoppingRepository.GetListItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingListItemNotFound
		}
		return nil, err
	}
	if item.ShoppingListID != list.ID {
		return nil, domain.ErrShoppingListItemNotFound
	}
	return item, nil
}

func toListResponse(list *entities.ShoppingList) domain.ShoppingListResponse {
	items := make([]domain.ShoppingListItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, toItemResponse(item))
	}
	return domain.ShoppingListResponse{
		ID:        list.ID.String(),
		Name:      list.Name,
		Items:     items,
		CreatedAt: list.CreatedAt,
	}
}

func toItemResponse(item *entities.ShoppingListItem) domain.ShoppingListItemResponse {
	return domain.ShoppingListItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		Category:    item.Category,
		IsPurchased: item.IsPurchased,
	}
}
