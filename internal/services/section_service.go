package services

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tmaeda/studycards-api/internal/models"
	"github.com/tmaeda/studycards-api/internal/repository"
	"github.com/tmaeda/studycards-api/internal/utils"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrInvalidHexColor = errors.New("invalid hex color format")
)

// SectionService provides business logic for section operations.
type SectionService struct {
	store repository.Store
}

// NewSectionService creates a new SectionService.
func NewSectionService(store repository.Store) *SectionService {
	return &SectionService{
		store: store,
	}
}

// GetByID returns a single section.
func (s *SectionService) GetByID(sectionID string) (*models.Section, error) {
	section, err := s.store.Sections().FindByID(sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to find section: %w", err)
	}
	return section, nil
}

// ListByCollection returns every section under a collection.
func (s *SectionService) ListByCollection(collectionID string) ([]models.Section, error) {
	sections, err := s.store.Sections().ListByCollection(collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

// CreateSectionInput represents parameters to create a new section.
type CreateSectionInput struct {
	UserID          string
	Name            string
	BackgroundColor string
	TextColor       string
	CollectionID    string
}

// Create adds a section to a collection, advancing the owner's section
// sequence and both section counters inside one transaction.
func (s *SectionService) Create(input CreateSectionInput) (*models.Section, error) {
	if !utils.IsValidHexColor(input.BackgroundColor) || !utils.IsValidHexColor(input.TextColor) {
		return nil, ErrInvalidHexColor
	}

	var section *models.Section

	err := s.store.Transaction(func(tx repository.Store) error {
		user, err := tx.Users().FindByIDForUpdate(input.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to find user: %w", err)
		}

		collection, err := tx.Collections().FindByIDForUpdate(input.CollectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCollectionNotFound
			}
			return fmt.Errorf("failed to find collection: %w", err)
		}

		user.SectionSeq++
		user.TotalSections++
		collection.TotalNoSections++

		sectionID := utils.SectionID(collection.ID, user.SectionSeq)
		section = &models.Section{
			ID:              sectionID,
			CollectionID:    collection.ID,
			Name:            input.Name,
			BackgroundColor: input.BackgroundColor,
			TextColor:       input.TextColor,
			FlashcardIDs:    datatypes.NewJSONSlice([]string{}),
		}
		collection.SectionIDs = append(collection.SectionIDs, sectionID)

		if err := tx.Sections().Create(section); err != nil {
			return fmt.Errorf("failed to create section: %w", err)
		}
		if err := tx.Collections().Update(collection); err != nil {
			return fmt.Errorf("failed to update collection: %w", err)
		}
		if err := tx.Users().Update(user); err != nil {
			return fmt.Errorf("failed to update user counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return section, nil
}

// Edit overwrites a section's name and colors.
func (s *SectionService) Edit(sectionID, name, backgroundColor, textColor string) (*models.Section, error) {
	if !utils.IsValidHexColor(backgroundColor) || !utils.IsValidHexColor(textColor) {
		return nil, ErrInvalidHexColor
	}

	section, err := s.store.Sections().FindByID(sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to find section: %w", err)
	}

	section.Name = name
	section.BackgroundColor = backgroundColor
	section.TextColor = textColor

	if err := s.store.Sections().Update(section); err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}

	return section, nil
}

// Delete removes a section and its flashcards, fixes the parent collection's
// section list and counter, and clamp-decrements the requester's counters.
func (s *SectionService) Delete(sectionID, requesterID string) error {
	return s.store.Transaction(func(tx repository.Store) error {
		section, err := tx.Sections().FindByID(sectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSectionNotFound
			}
			return fmt.Errorf("failed to find section: %w", err)
		}

		collection, err := tx.Collections().FindByIDForUpdate(section.CollectionID)
		if err != nil {
			// A section whose collection is gone has no verifiable owner.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotCollectionOwner
			}
			return fmt.Errorf("failed to find collection: %w", err)
		}
		if collection.UserID != requesterID {
			return ErrNotCollectionOwner
		}

		deletedCards, err := tx.Flashcards().CountBySection(sectionID)
		if err != nil {
			return fmt.Errorf("failed to count flashcards: %w", err)
		}

		if err := tx.Flashcards().DeleteBySection(sectionID); err != nil {
			return fmt.Errorf("failed to delete flashcards: %w", err)
		}
		if err := tx.Sections().Delete(sectionID); err != nil {
			return fmt.Errorf("failed to delete section: %w", err)
		}

		collection.TotalNoSections = max(0, collection.TotalNoSections-1)
		collection.SectionIDs = removeID(collection.SectionIDs, sectionID)
		if err := tx.Collections().Update(collection); err != nil {
			return fmt.Errorf("failed to update collection: %w", err)
		}

		user, err := tx.Users().FindByIDForUpdate(requesterID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to find user: %w", err)
		}

		user.TotalSections = max(0, user.TotalSections-1)
		user.TotalFlashcards = max(0, user.TotalFlashcards-int(deletedCards))

		if err := tx.Users().Update(user); err != nil {
			return fmt.Errorf("failed to update user counters: %w", err)
		}
		return nil
	})
}

// removeID drops the first occurrence of target, preserving order.
func removeID(ids []string, target string) []string {
	for i, id := range ids {
		if id == target {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
