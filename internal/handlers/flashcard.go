package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/tmaeda/studycards-api/internal/errors"
	"github.com/tmaeda/studycards-api/internal/services"
)

// FlashcardHandler coordinates flashcard-related HTTP handlers.
type FlashcardHandler struct {
	flashcardService *services.FlashcardService
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(flashcardService *services.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{
		flashcardService: flashcardService,
	}
}

// ListBySection returns the flashcards in a section owned by the user.
func (h *FlashcardHandler) ListBySection(c *gin.Context) {
	type ListRequest struct {
		SectionID string `json:"sectionId" binding:"required"`
		UserID    string `json:"userId" binding:"required"`
	}

	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "sectionId and userId required")
		return
	}

	cards, err := h.flashcardService.ListBySection(req.SectionID, req.UserID)
	if err != nil {
		respondFlashcardError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// ListBookmarked returns the user's bookmarked flashcards.
func (h *FlashcardHandler) ListBookmarked(c *gin.Context) {
	type ListRequest struct {
		UserID string `json:"userId" binding:"required"`
	}

	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "userId required")
		return
	}

	cards, err := h.flashcardService.ListBookmarked(req.UserID)
	if err != nil {
		respondFlashcardError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// Create bulk-creates flashcards under a section. Entries with a blank
// question are skipped.
func (h *FlashcardHandler) Create(c *gin.Context) {
	type NewFlashcardRequest struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	type CreateRequest struct {
		SectionID  string                `json:"sectionId" binding:"required"`
		UserID     string                `json:"userId" binding:"required"`
		Flashcards []NewFlashcardRequest `json:"flashcards" binding:"required,min=1"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "sectionId, userId, and flashcards[] required")
		return
	}

	items := make([]services.NewFlashcard, len(req.Flashcards))
	for i, fc := range req.Flashcards {
		items[i] = services.NewFlashcard{
			Question: fc.Question,
			Answer:   fc.Answer,
		}
	}

	created, err := h.flashcardService.BulkCreate(req.SectionID, req.UserID, items)
	if err != nil {
		respondFlashcardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Flashcards created",
		"flashcards": created,
	})
}

// Edit applies the provided fields to a flashcard.
func (h *FlashcardHandler) Edit(c *gin.Context) {
	type EditRequest struct {
		FlashcardID string  `json:"flashcardId" binding:"required"`
		UserID      *string `json:"userId"`
		Question    *string `json:"question"`
		Answer      *string `json:"answer"`
		Bookmarked  *bool   `json:"bookmarked"`
	}

	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "flashcardId required")
		return
	}

	card, err := h.flashcardService.Edit(services.EditFlashcardInput{
		FlashcardID: req.FlashcardID,
		UserID:      req.UserID,
		Question:    req.Question,
		Answer:      req.Answer,
		Bookmarked:  req.Bookmarked,
	})
	if err != nil {
		respondFlashcardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Flashcard updated",
		"flashcard": card,
	})
}

// Delete removes a flashcard.
func (h *FlashcardHandler) Delete(c *gin.Context) {
	type DeleteRequest struct {
		FlashcardID  string `json:"flashcardId" binding:"required"`
		UserID       string `json:"userId" binding:"required"`
		CollectionID string `json:"collectionId" binding:"required"`
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "flashcardId, userId, and collectionId required")
		return
	}

	if err := h.flashcardService.Delete(req.FlashcardID, req.UserID, req.CollectionID); err != nil {
		respondFlashcardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Flashcard deleted",
	})
}

func respondFlashcardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrCollectionNotFound):
		apierrors.NotFound(c, "Collection not found")
	case errors.Is(err, services.ErrSectionNotFound):
		apierrors.NotFound(c, "Section not found")
	case errors.Is(err, services.ErrFlashcardNotFound):
		apierrors.NotFound(c, "Flashcard not found")
	case errors.Is(err, services.ErrNotFlashcardOwner):
		apierrors.Forbidden(c, "")
	default:
		log.Printf("flashcard handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
