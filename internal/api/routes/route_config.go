package routes

import (
	"recipe-api/internal/api/handlers"
	"recipe-api/internal/middleware"
	"recipe-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	TagHandler        handlers.TagHandler
	IngredientHandler handlers.IngredientHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipe()
	c.Tag()
	c.Ingredient()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/user")
	{
		user.Post("/create", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forgot", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Recipe() {
	recipe := c.App.Group("/api/recipe", c.Middleware.AuthMiddleware(c.JWTService))

	recipe.Get("", c.RecipeHandler.GetRecipes)
	recipe.Post("", c.RecipeHandler.CreateRecipe)
	recipe.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipe.Patch("/:id", c.RecipeHandler.UpdateRecipe)
	recipe.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipe.Post("/:id/upload-image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Tag() {
	tag := c.App.Group("/api/tag", c.Middleware.AuthMiddleware(c.JWTService))

	tag.Get("", c.TagHandler.GetTags)
	tag.Post("", c.TagHandler.CreateTag)
	tag.Patch("/:id", c.TagHandler.UpdateTag)
	tag.Delete("/:id", c.TagHandler.DeleteTag)
}

func (c *Config) Ingredient() {
	ingredient := c.App.Group("/api/ingredient", c.Middleware.AuthMiddleware(c.JWTService))

	ingredient.Get("", c.IngredientHandler.GetIngredients)
	ingredient.Post("", c.IngredientHandler.CreateIngredient)
	ingredient.Patch("/:id", c.IngredientHandler.UpdateIngredient)
	ingredient.Delete("/:id", c.IngredientHandler.DeleteIngredient)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
