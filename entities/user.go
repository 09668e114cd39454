package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username          string     `gorm:"uniqueIndex;size:50" json:"username"`
	Email             string     `gorm:"uniqueIndex;size:100" json:"email"`
	Password          string     `json:"-"`
	FullName          string     `json:"full_name"`
	Bio               string     `gorm:"type:text" json:"bio,omitempty"`
	AvatarURL         string     `json:"avatar_url,omitempty"`
	IsVegetarian      bool       `json:"is_vegetarian"`
	IsVegan           bool       `json:"is_vegan"`
	IsGlutenFree      bool       `json:"is_gluten_free"`
	PreferredCuisines string     `gorm:"type:text" json:"preferred_cuisines,omitempty"`
	CookingSkillLevel string     `json:"cooking_skill_level,omitempty"` // Beginner, Intermediate, Advanced
	Role              string     `json:"role"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	IsVerified        bool       `json:"is_verified"`
	LastLogin         *time.Time `json:"last_login,omitempty"`

	Timestamp
}
