package entities

import (
	"github.com/google/uuid"
)

type ShoppingList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"index" json:"user_id"`
	Name   string    `gorm:"size:100" json:"name"`

	User  *User               `gorm:"foreignKey:UserID"`
	Items []*ShoppingListItem `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}

type ShoppingListItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShoppingListID uuid.UUID `gorm:"index" json:"shopping_list_id"`
	Name           string    `gorm:"size:100" json:"name"`
	Quantity       string    `gorm:"size:50" json:"quantity,omitempty"`
	Unit           string    `gorm:"size:20" json:"unit,omitempty"`
	Category       string    `gorm:"size:50" json:"category,omitempty"`
	IsPurchased    bool      `json:"is_purchased"`

	ShoppingList *ShoppingList `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}
