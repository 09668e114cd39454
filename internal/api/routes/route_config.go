package routes

import (
	"github.com/gofiber/fiber/v2"

	"yumzy-backend/internal/api/handlers"
	"yumzy-backend/internal/middleware"
	"yumzy-backend/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	SearchHandler   handlers.SearchHandler
	SocialHandler   handlers.SocialHandler
	FavoriteHandler handlers.FavoriteHandler
	ShoppingHandler handlers.ShoppingHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.User()
	c.Recipes()
	c.Search()
	c.Favorites()
	c.ShoppingLists()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Post("/send_verify", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.SendVerificationEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/me/analytics", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetUserAnalytics)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Delete("/deactivate", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeactivateAccount)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Get("/:id", c.UserHandler.GetPublicProfile)
		user.Get("/:id/stats", c.UserHandler.GetUserStats)
		user.Get("/:id/recipes", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetUserRecipes)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
		recipes.Get("/:id/share", c.RecipeHandler.GetShareURL)
		recipes.Post("/:id/share", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.ShareRecipe)

		recipes.Get("/:id/ratings", c.SocialHandler.GetRecipeRatings)
		recipes.Get("/:id/favorite-status", c.Middleware.AuthMiddleware(c.JWTService), c.FavoriteHandler.GetFavoriteStatus)
	}

	ratings := c.App.Group("/api/v1/ratings", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ratings.Post("", c.SocialHandler.SubmitRating)
		ratings.Delete("/:id", c.SocialHandler.DeleteRating)
	}
}

func (c *Config) Search() {
	search := c.App.Group("/api/v1/search")
	{
		search.Get("/recipes", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.SearchHandler.SearchRecipes)
		search.Get("/ingredients", c.SearchHandler.SearchIngredients)
		search.Get("/autocomplete", c.SearchHandler.Autocomplete)
		search.Get("/trending", c.SearchHandler.GetTrendingRecipes)
		search.Get("/popular", c.SearchHandler.GetPopularSearches)
	}
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/favorites", c.Middleware.AuthMiddleware(c.JWTService))
	{
		favorites.Post("", c.FavoriteHandler.AddFavorite)
		favorites.Get("", c.FavoriteHandler.GetUserFavorites)
		favorites.Delete("/:id", c.FavoriteHandler.RemoveFavorite)
	}
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/api/v1/shopping-lists", c.Middleware.AuthMiddleware(c.JWTService))
	{
		lists.Post("", c.ShoppingHandler.CreateShoppingList)
		lists.Get("", c.ShoppingHandler.GetUserShoppingLists)
		lists.Get("/:id", c.ShoppingHandler.GetShoppingList)
		lists.Put("/:id", c.ShoppingHandler.UpdateShoppingList)
		lists.Delete("/:id", c.ShoppingHandler.DeleteShoppingList)
		lists.Post("/:id/items", c.ShoppingHandler.AddListItem)
		lists.Patch("/:id/items/:itemId", c.ShoppingHandler.UpdateListItem)
		lists.Delete("/:id/items/:itemId", c.ShoppingHandler.RemoveListItem)
		lists.Post("/from-recipe/:recipeId", c.ShoppingHandler.CreateFromRecipe)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
