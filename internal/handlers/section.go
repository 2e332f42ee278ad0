package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/tmaeda/studycards-api/internal/errors"
	"github.com/tmaeda/studycards-api/internal/services"
)

// SectionHandler coordinates section-related HTTP handlers.
type SectionHandler struct {
	sectionService *services.SectionService
}

// NewSectionHandler creates a new SectionHandler.
func NewSectionHandler(sectionService *services.SectionService) *SectionHandler {
	return &SectionHandler{
		sectionService: sectionService,
	}
}

// GetByID returns a single section.
func (h *SectionHandler) GetByID(c *gin.Context) {
	type GetRequest struct {
		SectionID string `json:"sectionId" binding:"required"`
	}

	var req GetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "sectionId required")
		return
	}

	section, err := h.sectionService.GetByID(req.SectionID)
	if err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// ListByCollection returns every section under a collection.
func (h *SectionHandler) ListByCollection(c *gin.Context) {
	type ListRequest struct {
		CollectionID string `json:"collectionId" binding:"required"`
	}

	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "collectionId required")
		return
	}

	sections, err := h.sectionService.ListByCollection(req.CollectionID)
	if err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sections)
}

// Create adds a section to a collection.
func (h *SectionHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		UserID          string `json:"userId" binding:"required"`
		Name            string `json:"name" binding:"required"`
		BackgroundColor string `json:"backgroundColor" binding:"required"`
		TextColor       string `json:"textColor" binding:"required"`
		CollectionID    string `json:"collectionId" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "name, collectionId, and userId required")
		return
	}

	section, err := h.sectionService.Create(services.CreateSectionInput{
		UserID:          req.UserID,
		Name:            req.Name,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		CollectionID:    req.CollectionID,
	})
	if err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}

// Edit overwrites a section's name and colors.
func (h *SectionHandler) Edit(c *gin.Context) {
	type EditRequest struct {
		SectionID       string `json:"sectionId" binding:"required"`
		Name            string `json:"name" binding:"required"`
		BackgroundColor string `json:"backgroundColor" binding:"required"`
		TextColor       string `json:"textColor" binding:"required"`
	}

	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "sectionId, name, backgroundColor, and textColor required")
		return
	}

	section, err := h.sectionService.Edit(req.SectionID, req.Name, req.BackgroundColor, req.TextColor)
	if err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// Delete removes a section and its flashcards.
func (h *SectionHandler) Delete(c *gin.Context) {
	type DeleteRequest struct {
		SectionID string `json:"sectionId" binding:"required"`
		UserID    string `json:"userId" binding:"required"`
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "sectionId and userId required")
		return
	}

	if err := h.sectionService.Delete(req.SectionID, req.UserID); err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Section and flashcards deleted",
	})
}

func respondSectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidHexColor):
		apierrors.BadRequest(c, "Invalid hex color format")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrCollectionNotFound):
		apierrors.NotFound(c, "Collection not found")
	case errors.Is(err, services.ErrSectionNotFound):
		apierrors.NotFound(c, "Section not found")
	case errors.Is(err, services.ErrNotCollectionOwner):
		apierrors.Forbidden(c, "")
	default:
		log.Printf("section handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
