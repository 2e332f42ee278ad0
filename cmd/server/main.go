package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/tmaeda/studycards-api/internal/config"
	"github.com/tmaeda/studycards-api/internal/database"
	"github.com/tmaeda/studycards-api/internal/handlers"
	"github.com/tmaeda/studycards-api/internal/repository"
	"github.com/tmaeda/studycards-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := repository.NewStore(database.GetDB())

	// Initialize services
	authService := services.NewAuthService(store)
	collectionService := services.NewCollectionService(store)
	sectionService := services.NewSectionService(store)
	flashcardService := services.NewFlashcardService(store)

	var aiService *services.AIService
	if cfg.AIAPIKey != "" {
		aiService = services.NewAIService(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	sectionHandler := handlers.NewSectionHandler(sectionService)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService)
	aiHandler := handlers.NewAIHandler(aiService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Studycards API is running",
		})
	})

	// API routes. Parameters travel in JSON bodies on every route, list and
	// get operations included, which is why lookups are POSTs.
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/login", authHandler.Login)
			users.POST("/newUser", authHandler.Register)
			users.PUT("/editUser", authHandler.EditUser)
		}

		collections := api.Group("/collections")
		{
			collections.POST("/collections", collectionHandler.ListByUser)
			collections.POST("/collection", collectionHandler.GetDetail)
			collections.POST("/newCollection", collectionHandler.Create)
			collections.PUT("/change-title", collectionHandler.Rename)
			collections.DELETE("/deleteCollection", collectionHandler.Delete)
		}

		sections := api.Group("/sections")
		{
			sections.POST("/section", sectionHandler.GetByID)
			sections.POST("/sections", sectionHandler.ListByCollection)
			sections.POST("/newSection", sectionHandler.Create)
			sections.PUT("/editSection", sectionHandler.Edit)
			sections.DELETE("/deleteSection", sectionHandler.Delete)
		}

		flashcards := api.Group("/flashcards")
		{
			flashcards.POST("/flashcards", flashcardHandler.ListBySection)
			flashcards.POST("/bookmarked", flashcardHandler.ListBookmarked)
			flashcards.POST("/newFlashcard", flashcardHandler.Create)
			flashcards.PUT("/editFlashcard", flashcardHandler.Edit)
			flashcards.DELETE("/deleteFlashcard", flashcardHandler.Delete)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/chat", aiHandler.Chat)
		}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(r)

	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
