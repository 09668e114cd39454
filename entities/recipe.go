package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID        uuid.UUID `gorm:"index" json:"author_id"`
	Title           string    `gorm:"size:100" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Instructions    string    `gorm:"type:text" json:"instructions"`
	ImageURL        string    `json:"image_url,omitempty"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	TotalMinutes    int       `json:"total_minutes"`
	Servings        int       `json:"servings"`
	DifficultyLevel string    `gorm:"size:20" json:"difficulty_level"` // Easy, Medium, Hard
	CuisineType     string    `gorm:"size:50;index" json:"cuisine_type"`
	MealType        string    `gorm:"size:50;index" json:"meal_type"`
	IsVegetarian    bool      `json:"is_vegetarian"`
	IsVegan         bool      `json:"is_vegan"`
	IsGlutenFree    bool      `json:"is_gluten_free"`
	IsPublished     bool      `gorm:"default:true;index" json:"is_published"`
	ViewCount       int64     `json:"view_count"`
	FavoriteCount   int64     `json:"favorite_count"`
	RatingCount     int64     `json:"rating_count"`
	AverageRating   float64   `json:"average_rating"`

	Author      *User               `gorm:"foreignKey:AuthorID"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Timestamp
}
