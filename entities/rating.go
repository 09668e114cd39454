package entities

import (
	"github.com/google/uuid"
)

type Rating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index;uniqueIndex:idx_user_recipe_rating" json:"user_id"`
	RecipeID uuid.UUID `gorm:"index;uniqueIndex:idx_user_recipe_rating" json:"recipe_id"`
	Rating   int       `json:"rating"` // 1..5
	Comment  string    `gorm:"type:text" json:"comment,omitempty"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
