package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetShoppingLists   = "success get shopping lists"
	MessageSuccessCreateShoppingList = "shopping list created successfully"
	MessageSuccessUpdateShoppingList = "shopping list updated successfully"
	MessageSuccessDeleteShoppingList = "shopping list deleted successfully"
	MessageSuccessAddListItem        = "item added to shopping list"
	MessageSuccessUpdateListItem     = "shopping list item updated"
	MessageSuccessRemoveListItem     = "item removed from shopping list"

	MessageFailedGetShoppingLists   = "failed to get shopping lists"
	MessageFailedCreateShoppingList = "failed to create shopping list"
	MessageFailedUpdateShoppingList = "failed to update shopping list"
	MessageFailedDeleteShoppingList = "failed to delete shopping list"
	MessageFailedModifyListItem     = "failed to modify shopping list item"

	ErrShoppingListNotFound     = fmt.Errorf("%w: shopping list", ErrNotFound)
	ErrShoppingListItemNotFound = fmt.Errorf("%w: shopping list item", ErrNotFound)
	ErrShoppingListAccessDenied = fmt.Errorf("%w: not the shopping list owner", ErrAccessDenied)
)

type (
	CreateShoppingListRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	UpdateShoppingListRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	ShoppingListItemRequest struct {
		Name     string `json:"name" validate:"required,max=100"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
		Category string `json:"category"`
	}

	UpdateShoppingListItemRequest struct {
		Name        *string `json:"name" validate:"omitempty,max=100"`
		Quantity    *string `json:"quantity"`
		Unit        *string `json:"unit"`
		Category    *string `json:"category"`
		IsPurchased *bool   `json:"is_purchased"`
	}

	ShoppingListItemResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Quantity    string `json:"quantity,omitempty"`
		Unit        string `json:"unit,omitempty"`
		Category    string `json:"category,omitempty"`
		IsPurchased bool   `json:"is_purchased"`
	}

	ShoppingListResponse struct {
		ID        string                     `json:"id"`
		Name      string                     `json:"name"`
		Items     []ShoppingListItemResponse `json:"items"`
		CreatedAt time.Time                  `json:"created_at"`
	}
)
