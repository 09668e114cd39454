package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetProfile     = "success get profile"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessGetUserStats   = "success get user stats"
	MessageSuccessGetAnalytics   = "success get user analytics"
	MessageSuccessDeactivate     = "account deactivated"
	MessageSuccessSendVerifyMail = "verification email sent"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessUploadAvatar   = "avatar uploaded successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to get profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedGetUserStats   = "failed to get user stats"
	MessageFailedGetAnalytics   = "failed to get user analytics"
	MessageFailedSendVerifyMail = "failed to send verification email"
	MessageFailedVerifyEmail    = "failed to verify email"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedUploadAvatar   = "failed to upload avatar"

	ErrUserNotFound         = fmt.Errorf("%w: user", ErrNotFound)
	ErrUsernameAlreadyTaken = fmt.Errorf("%w: username already registered", ErrConflict)
	ErrEmailAlreadyTaken    = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrCredentialsInvalid   = fmt.Errorf("%w: incorrect username or password", ErrValidation)
	ErrEmailAlreadyVerified = fmt.Errorf("%w: email already verified", ErrConflict)
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		FullName string `json:"full_name" validate:"max=100"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateUserRequest struct {
		FullName          *string `json:"full_name" validate:"omitempty,max=100"`
		Bio               *string `json:"bio"`
		IsVegetarian      *bool   `json:"is_vegetarian"`
		IsVegan           *bool   `json:"is_vegan"`
		IsGlutenFree      *bool   `json:"is_gluten_free"`
		PreferredCuisines *string `json:"preferred_cuisines"`
		CookingSkillLevel *string `json:"cooking_skill_level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UserResponse struct {
		ID                string     `json:"id"`
		Username          string     `json:"username"`
		Email             string     `json:"email,omitempty"`
		FullName          string     `json:"full_name"`
		Bio               string     `json:"bio,omitempty"`
		AvatarURL         string     `json:"avatar_url,omitempty"`
		IsVegetarian      bool       `json:"is_vegetarian"`
		IsVegan           bool       `json:"is_vegan"`
		IsGlutenFree      bool       `json:"is_gluten_free"`
		PreferredCuisines string     `json:"preferred_cuisines,omitempty"`
		CookingSkillLevel string     `json:"cooking_skill_level,omitempty"`
		IsVerified        bool       `json:"is_verified"`
		CreatedAt         time.Time  `json:"created_at"`
		LastLogin         *time.Time `json:"last_login,omitempty"`
	}

	UserStatsResponse struct {
		UserID                string    `json:"user_id"`
		Username              string    `json:"username"`
		RecipeCount           int64     `json:"recipe_count"`
		FavoriteCount         int64     `json:"favorite_count"`
		RatingCount           int64     `json:"rating_count"`
		AverageRatingReceived float64   `json:"average_rating_received"`
		MemberSince           time.Time `json:"member_since"`
	}

	UserAnalyticsResponse struct {
		UserID                 string     `json:"user_id"`
		TotalRecipes           int64      `json:"total_recipes"`
		TotalFavoritesGiven    int64      `json:"total_favorites_given"`
		TotalRatingsGiven      int64      `json:"total_ratings_given"`
		TotalViewsReceived     int64      `json:"total_views_received"`
		TotalFavoritesReceived int64      `json:"total_favorites_received"`
		MostPopularRecipeTitle string     `json:"most_popular_recipe_title,omitempty"`
		MostPopularRecipeViews int64      `json:"most_popular_recipe_views"`
		FavoriteCuisine        string     `json:"favorite_cuisine,omitempty"`
		AccountCreated         time.Time  `json:"account_created"`
		LastActive             *time.Time `json:"last_active,omitempty"`
	}
)
