package user

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yumzy-backend/domain"
	"yumzy-backend/entities"
	"yumzy-backend/internal/utils"
	"yumzy-backend/internal/utils/mailing"
	"yumzy-backend/internal/utils/storage"
	"yumzy-backend/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error)
		GetPublicProfile(ctx context.Context, userID string) (domain.UserResponse, error)
		GetUserStats(ctx context.Context, userID string) (domain.UserStatsResponse, error)
		GetUserAnalytics(ctx context.Context, userID string) (domain.UserAnalyticsResponse, error)
		DeactivateUser(ctx context.Context, userID string) error
		SendVerificationEmail(ctx context.Context, userID string) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		UploadAvatar(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	usernameTaken, err := s.userRepository.CheckUsernameExists(ctx, req.Username)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if usernameTaken {
		return domain.UserResponse{}, domain.ErrUsernameAlreadyTaken
	}

	emailTaken, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if emailTaken {
		return domain.UserResponse{}, domain.ErrEmailAlreadyTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Role:     domain.RoleUser,
		IsActive: true,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	logrus.WithField("username", user.Username).Info("new user registered")
	return userToResponse(user, true), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if !user.IsActive {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		logrus.WithError(err).Warn("failed to update last login")
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		User:  userToResponse(user, true),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return userToResponse(user, true), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.IsVegetarian != nil {
		user.IsVegetarian = *req.IsVegetarian
	}
	if req.IsVegan != nil {
		user.IsVegan = *req.IsVegan
	}
	if req.IsGlutenFree != nil {
		user.IsGlutenFree = *req.IsGlutenFree
	}
	if req.PreferredCuisines != nil {
		user.PreferredCuisines = *req.PreferredCuisines
	}
	if req.CookingSkillLevel != nil {
		user.CookingSkillLevel = *req.CookingSkillLevel
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return userToResponse(user, true), nil
}

func (s *userService) GetPublicProfile(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if !user.IsActive {
		return domain.UserResponse{}, domain.ErrUserNotFound
	}

	// Email and login details are private.
	return userToResponse(user, false), nil
}

func (s *userService) GetUserStats(ctx context.Context, userID string) (domain.UserStatsResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserStatsResponse{}, domain.ErrUserNotFound
		}
		return domain.UserStatsResponse{}, err
	}
	if !user.IsActive {
		return domain.UserStatsResponse{}, domain.ErrUserNotFound
	}

	stats, err := s.userRepository.GetUserStats(ctx, userID)
	if err != nil {
		return domain.UserStatsResponse{}, err
	}

	return domain.UserStatsResponse{
		UserID:                user.ID.String(),
		Username:              user.Username,
		RecipeCount:           stats.RecipeCount,
		FavoriteCount:         stats.FavoriteCount,
		RatingCount:           stats.RatingCount,
		AverageRatingReceived: stats.AverageRatingReceived,
		MemberSince:           user.CreatedAt,
	}, nil
}

// GetUserAnalytics returns the private reach numbers for the caller's own
// account. Handlers only ever pass the authenticated user's ID here.
func (s *userService) GetUserAnalytics(ctx context.Context, userID string) (domain.UserAnalyticsResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserAnalyticsResponse{}, domain.ErrUserNotFound
		}
		return domain.UserAnalyticsResponse{}, err
	}
	if !user.IsActive {
		return domain.UserAnalyticsResponse{}, domain.ErrUserNotFound
	}

	analytics, err := s.userRepository.GetUserAnalytics(ctx, userID)
	if err != nil {
		return domain.UserAnalyticsResponse{}, err
	}

	return domain.UserAnalyticsResponse{
		UserID:                 user.ID.String(),
		TotalRecipes:           analytics.TotalRecipes,
		TotalFavoritesGiven:    analytics.TotalFavoritesGiven,
		TotalRatingsGiven:      analytics.TotalRatingsGiven,
		TotalViewsReceived:     analytics.TotalViewsReceived,
		TotalFavoritesReceived: analytics.TotalFavoritesReceived,
		MostPopularRecipeTitle: analytics.MostPopularRecipeTitle,
		MostPopularRecipeViews: analytics.MostPopularRecipeViews,
		FavoriteCuisine:        analytics.FavoriteCuisine,
		AccountCreated:         user.CreatedAt,
		LastActive:             user.LastLogin,
	}, nil
}

func (s *userService) DeactivateUser(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsActive = false
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SendVerificationEmail(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return domain.ErrEmailAlreadyVerified
	}

	token, err := s.jwtService.GenerateTokenWithClaims(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "verify_email",
	}, 24*time.Hour)
	if err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please verify your email by clicking <a href=%q>here</a>.</p>",
		user.Username, verifyURL,
	)

	return mailing.SendMail(user.Email, "Verify your email", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenClaims(token)
	if err != nil {
		return err
	}
	if claims["purpose"] != "verify_email" {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal whether the email is registered.
			return nil
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenWithClaims(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "reset_password",
	}, 30*time.Minute)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Reset your password by clicking <a href=%q>here</a>. The link expires in 30 minutes.</p>",
		user.Username, resetURL,
	)

	return mailing.SendMail(user.Email, "Reset your password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenClaims(req.Token)
	if err != nil {
		return err
	}
	if claims["purpose"] != "reset_password" {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) UploadAvatar(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	key := fmt.Sprintf("avatars/%s/%s", user.ID.String(), fileHeader.Filename)
	url, err := s.s3.UploadFile(ctx, key, fileHeader)
	if err != nil {
		return "", err
	}

	user.AvatarURL = url
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	return url, nil
}

func userToResponse(user *entities.User, includePrivate bool) domain.UserResponse {
	res := domain.UserResponse{
		ID:                user.ID.String(),
		Username:          user.Username,
		FullName:          user.FullName,
		Bio:               user.Bio,
		AvatarURL:         user.AvatarURL,
		IsVegetarian:      user.IsVegetarian,
		IsVegan:           user.IsVegan,
		IsGlutenFree:      user.IsGlutenFree,
		PreferredCuisines: user.PreferredCuisines,
		CookingSkillLevel: user.CookingSkillLevel,
		IsVerified:        user.IsVerified,
		CreatedAt:         user.CreatedAt,
	}

	if includePrivate {
		res.Email = user.Email
		res.LastLogin = user.LastLogin
	}

	return res
}
