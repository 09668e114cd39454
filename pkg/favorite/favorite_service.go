package favorite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yumzy-backend/domain"
	"yumzy-backend/entities"
	"yumzy-backend/internal/metrics"
	"yumzy-backend/internal/utils"
)

type (
	FavoriteService interface {
		AddFavorite(ctx context.Context, req domain.AddFavoriteRequest, userID string) (domain.FavoriteResponse, error)
		RemoveFavorite(ctx context.Context, recipeID, userID string) error
		GetUserFavorites(ctx context.Context, page, limit int, userID string) (domain.FavoriteListResponse, error)
		GetFavoriteStatus(ctx context.Context, recipeID, userID string) (domain.FavoriteStatusResponse, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		recipeFinder       RecipeFinder
	}

	// RecipeFinder is the slice of the recipe repository favorites need.
	RecipeFinder interface {
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, recipeFinder RecipeFinder) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		recipeFinder:       recipeFinder,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, req domain.AddFavoriteRequest, userID string) (domain.FavoriteResponse, error) {
	recipe, err := s.recipeFinder.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FavoriteResponse{}, domain.ErrRecipeNotFound
		}
		return domain.FavoriteResponse{}, err
	}
	// Drafts stay invisible to everyone but their author.
	if !recipe.IsPublished && recipe.AuthorID.String() != userID {
		return domain.FavoriteResponse{}, domain.ErrRecipeNotFound
	}

	favorited, err := s.favoriteRepository.IsFavorited(ctx, userID, req.RecipeID)
	if err != nil {
		return domain.FavoriteResponse{}, err
	}
	if favorited {
		return domain.FavoriteResponse{}, domain.ErrAlreadyFavorited
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FavoriteResponse{}, domain.ErrParseUUID
	}

	favorite := &entities.Favorite{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipe.ID,
		Notes:    req.Notes,
	}

	if err := s.favoriteRepository.AddFavorite(ctx, favorite); err != nil {
		return domain.FavoriteResponse{}, err
	}

	metrics.FavoritesTotal.WithLabelValues("add").Inc()

	return domain.FavoriteResponse{
		ID:          favorite.ID.String(),
		RecipeID:    recipe.ID.String(),
		RecipeTitle: recipe.Title,
		RecipeImage: recipe.ImageURL,
		Notes:       favorite.Notes,
		CreatedAt:   favorite.CreatedAt,
	}, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, recipeID, userID string) error {
	favorited, err := s.favoriteRepository.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !favorited {
		return domain.ErrFavoriteNotFound
	}

	if err := s.favoriteRepository.RemoveFavorite(ctx, userID, recipeID); err != nil {
		return err
	}

	metrics.FavoritesTotal.WithLabelValues("remove").Inc()
	return nil
}

func (s *favoriteService) GetUserFavorites(ctx context.Context, page, limit int, userID string) (domain.FavoriteListResponse, error) {
	if !utils.ValidPageWindow(page, limit) {
		return domain.FavoriteListResponse{}, domain.ErrInvalidPagination
	}

	favorites, count, err := s.favoriteRepository.GetUserFavorites(ctx, userID, page, limit)
	if err != nil {
		return domain.FavoriteListResponse{}, err
	}

	result := make([]domain.FavoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		res := domain.FavoriteResponse{
			ID:        fav.ID.String(),
			RecipeID:  fav.RecipeID.String(),
			Notes:     fav.Notes,
			CreatedAt: fav.CreatedAt,
		}
		if fav.Recipe != nil {
			res.RecipeTitle = fav.Recipe.Title
			res.RecipeImage = fav.Recipe.ImageURL
		}
		result = append(result, res)
	}

	totalPages := utils.TotalPages(count, limit)

	return domain.FavoriteListResponse{
		Favorites: result,
		Pagination: domain.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalCount: count,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

func (s *favoriteService) GetFavoriteStatus(ctx context.Context, recipeID, userID string) (domain.FavoriteStatusResponse, error) {
	favorited, err := s.favoriteRepository.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return domain.FavoriteStatusResponse{}, err
	}
	return domain.FavoriteStatusResponse{
		RecipeID:    recipeID,
		IsFavorited: favorited,
	}, nil
}
