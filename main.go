package main

import (
	"fmt"
	"log"
	"os"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()

	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}

	// Token blacklist is optional: without Redis, logout is a no-op and
	// tokens age out on their own.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Fatalf("Failed to initialize token blacklist: %v", err)
		}
		services.TokenBlacklist = blacklist
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Repositories
	userRepo := repository.GetUserRepo(utils.MongoClient)
	categoriesRepo := repository.GetCategoriesRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)

	// Services
	userService := &usecase.UserService{UsersRepo: userRepo}
	categoryService := &usecase.CategoryService{
		CategoriesRepo: categoriesRepo,
		NotesRepo:      notesRepo,
	}
	noteService := &usecase.NoteService{
		NotesRepo:      notesRepo,
		CategoriesRepo: categoriesRepo,
	}

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	categoriesHandler := handler.NewCategoriesHandler(categoryService)
	notesHandler := handler.NewNotesHandler(noteService)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.GET("/health", handler.HealthHandler)

		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		auth := protected.Group("/auth")
		{
			auth.GET("/me", authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", categoriesHandler.ListCategories)
			categories.POST("", categoriesHandler.CreateCategory)
			categories.POST("/seed_defaults", categoriesHandler.SeedDefaults)
			categories.DELETE("/:id", categoriesHandler.DeleteCategory)
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", notesHandler.ListNotes)
			notes.POST("", notesHandler.CreateNote)
			notes.GET("/:id", notesHandler.GetNote)
			notes.PATCH("/:id", notesHandler.UpdateNote)
			notes.DELETE("/:id", notesHandler.DeleteNote)
		}
	}

	return router
}

func main() {
	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
