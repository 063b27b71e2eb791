package config

import (
	"os"
	"time"

	"recipe-api/internal/api/handlers"
	"recipe-api/internal/api/routes"
	"recipe-api/internal/middleware"
	"recipe-api/internal/utils"
	"recipe-api/internal/utils/storage"
	"recipe-api/pkg/auth"
	"recipe-api/pkg/ingredient"
	"recipe-api/pkg/jwt"
	"recipe-api/pkg/recipe"
	"recipe-api/pkg/tag"
	"recipe-api/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
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
	sessionRepository := auth.NewSessionRepository(db)
	tagRepository := tag.NewTagRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, sessionRepository, jwtService)
	tagService := tag.NewTagService(tagRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, tagRepository, ingredientRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	tagHandler := handlers.NewTagHandler(tagService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	middlewares := middleware.NewMiddleware(sessionRepository)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		TagHandler:        tagHandler,
		IngredientHandler: ingredientHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
