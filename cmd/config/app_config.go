package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"yumzy-backend/internal/api/handlers"
	"yumzy-backend/internal/api/routes"
	"yumzy-backend/internal/middleware"
	"yumzy-backend/internal/utils"
	"yumzy-backend/internal/utils/storage"
	"yumzy-backend/pkg/favorite"
	"yumzy-backend/pkg/jwt"
	"yumzy-backend/pkg/recipe"
	"yumzy-backend/pkg/search"
	"yumzy-backend/pkg/shopping"
	"yumzy-backend/pkg/social"
	"yumzy-backend/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	searchRepository := search.NewSearchRepository(db)
	ratingRepository := social.NewRatingRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, favoriteRepository, ratingRepository, s3)
	searchService := search.NewSearchService(searchRepository, favoriteRepository, ratingRepository)
	socialService := social.NewSocialService(ratingRepository)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, recipeRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	searchHandler := handlers.NewSearchHandler(searchService)
	socialHandler := handlers.NewSocialHandler(socialService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		SearchHandler:   searchHandler,
		SocialHandler:   socialHandler,
		FavoriteHandler: favoriteHandler,
		ShoppingHandler: shoppingHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
