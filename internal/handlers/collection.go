package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmaeda/studycards-api/internal/dto"
	apierrors "github.com/tmaeda/studycards-api/internal/errors"
	"github.com/tmaeda/studycards-api/internal/services"
)

// CollectionHandler coordinates collection-related HTTP handlers.
type CollectionHandler struct {
	collectionService *services.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(collectionService *services.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
	}
}

// ListByUser returns every collection owned by the user.
func (h *CollectionHandler) ListByUser(c *gin.Context) {
	type ListRequest struct {
		UserID string `json:"userId" binding:"required"`
	}

	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "userId required")
		return
	}

	collections, err := h.collectionService.ListByUser(req.UserID)
	if err != nil {
		respondCollectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, collections)
}

// GetDetail returns one collection with its sections and flashcards nested.
func (h *CollectionHandler) GetDetail(c *gin.Context) {
	type DetailRequest struct {
		CollectionID string `json:"collectionId" binding:"required"`
	}

	var req DetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "collectionId required")
		return
	}

	collection, nested, err := h.collectionService.GetWithSectionsAndFlashcards(req.CollectionID)
	if err != nil {
		respondCollectionError(c, err)
		return
	}

	detail := dto.CollectionDetailDTO{
		ID:       collection.ID,
		Title:    collection.Title,
		UserID:   collection.UserID,
		Sections: make([]dto.SectionDetailDTO, 0, len(nested)),
	}
	for _, entry := range nested {
		detail.Sections = append(detail.Sections, dto.ToSectionDetailDTO(entry.Section, entry.Flashcards))
	}

	c.JSON(http.StatusOK, detail)
}

// Create creates a collection with its default "Main" section.
func (h *CollectionHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Title  string `json:"title" binding:"required"`
		UserID string `json:"userId" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Title and userId required")
		return
	}

	collection, err := h.collectionService.Create(req.Title, req.UserID)
	if err != nil {
		respondCollectionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, collection)
}

// Rename changes a collection's title.
func (h *CollectionHandler) Rename(c *gin.Context) {
	type RenameRequest struct {
		CollectionID string `json:"collectionId" binding:"required"`
		NewTitle     string `json:"newTitle" binding:"required"`
	}

	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "collectionId and newTitle required")
		return
	}

	collection, err := h.collectionService.Rename(req.CollectionID, req.NewTitle)
	if err != nil {
		respondCollectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, collection)
}

// Delete removes a collection and all of its sections and flashcards.
func (h *CollectionHandler) Delete(c *gin.Context) {
	type DeleteRequest struct {
		CollectionID string `json:"collectionId" binding:"required"`
		UserID       string `json:"userId" binding:"required"`
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "collectionId and userId required")
		return
	}

	if err := h.collectionService.Delete(req.CollectionID, req.UserID); err != nil {
		respondCollectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Collection, sections, and flashcards deleted",
	})
}

func respondCollectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrCollectionNotFound):
		apierrors.NotFound(c, "Collection not found")
	case errors.Is(err, services.ErrNotCollectionOwner):
		apierrors.Forbidden(c, "")
	default:
		log.Printf("collection handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
