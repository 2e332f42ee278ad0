package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tmaeda/studycards-api/internal/database"
	"github.com/tmaeda/studycards-api/internal/dto"
	"github.com/tmaeda/studycards-api/internal/models"
	"github.com/tmaeda/studycards-api/internal/repository"
	"github.com/tmaeda/studycards-api/internal/services"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	authService       *services.AuthService
	collectionService *services.CollectionService
	sectionService    *services.SectionService
	flashcardService  *services.FlashcardService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A fresh pool connection would see a fresh in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	err = db.AutoMigrate(
		&models.User{},
		&models.Collection{},
		&models.Section{},
		&models.Flashcard{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	store := repository.NewStore(db)
	authService := services.NewAuthService(store)
	collectionService := services.NewCollectionService(store)
	sectionService := services.NewSectionService(store)
	flashcardService := services.NewFlashcardService(store)

	authHandler := NewAuthHandler(authService)
	collectionHandler := NewCollectionHandler(collectionService)
	sectionHandler := NewSectionHandler(sectionService)
	flashcardHandler := NewFlashcardHandler(flashcardService)

	r := gin.New()
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
	}

	return &testEnv{
		db:                db,
		router:            r,
		authService:       authService,
		collectionService: collectionService,
		sectionService:    sectionService,
		flashcardService:  flashcardService,
	}
}

func (env *testEnv) request(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) registerUser(t *testing.T, name, email string) dto.UserDTO {
	t.Helper()

	w := env.request(t, "POST", "/api/users/newUser", map[string]string{
		"name":     name,
		"email":    email,
		"password": "supersecret",
	})
	require.Equal(t, 201, w.Code)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	return user
}

func (env *testEnv) fetchUser(t *testing.T, id string) models.User {
	t.Helper()

	var user models.User
	require.NoError(t, env.db.First(&user, "id = ?", id).Error)
	return user
}
