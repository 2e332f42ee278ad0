package services

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tmaeda/studycards-api/internal/constants"
	"github.com/tmaeda/studycards-api/internal/models"
	"github.com/tmaeda/studycards-api/internal/repository"
	"github.com/tmaeda/studycards-api/internal/utils"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrNotCollectionOwner = errors.New("collection does not belong to this user")
)

// CollectionService provides business logic for collection operations.
type CollectionService struct {
	store repository.Store
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(store repository.Store) *CollectionService {
	return &CollectionService{
		store: store,
	}
}

// ListByUser returns every collection owned by the user.
func (s *CollectionService) ListByUser(userID string) ([]models.Collection, error) {
	collections, err := s.store.Collections().ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

// SectionWithFlashcards pairs a section with the flashcards it contains.
type SectionWithFlashcards struct {
	Section    models.Section
	Flashcards []models.Flashcard
}

// GetWithSectionsAndFlashcards assembles the nested collection view. The
// three lookups run sequentially without a snapshot, so a concurrent
// mutation can surface in only part of the result.
func (s *CollectionService) GetWithSectionsAndFlashcards(collectionID string) (*models.Collection, []SectionWithFlashcards, error) {
	collection, err := s.store.Collections().FindByID(collectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCollectionNotFound
		}
		return nil, nil, fmt.Errorf("failed to find collection: %w", err)
	}

	sections, err := s.store.Sections().ListByCollection(collectionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sections: %w", err)
	}

	nested := make([]SectionWithFlashcards, 0, len(sections))
	for _, section := range sections {
		cards, err := s.store.Flashcards().ListBySection(section.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list flashcards: %w", err)
		}
		nested = append(nested, SectionWithFlashcards{
			Section:    section,
			Flashcards: cards,
		})
	}

	return collection, nested, nil
}

// Create creates a collection together with its default "Main" section.
// The owner row is locked while sequences and counters advance.
func (s *CollectionService) Create(title, userID string) (*models.Collection, error) {
	var collection *models.Collection

	err := s.store.Transaction(func(tx repository.Store) error {
		user, err := tx.Users().FindByIDForUpdate(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to find user: %w", err)
		}

		user.CollectionSeq++
		user.SectionSeq++
		user.TotalCollections++
		user.TotalSections++

		collectionID := utils.CollectionID(user.ID, user.CollectionSeq)
		sectionID := utils.SectionID(collectionID, user.SectionSeq)

		mainSection := &models.Section{
			ID:              sectionID,
			CollectionID:    collectionID,
			Name:            constants.DefaultSectionName,
			BackgroundColor: constants.DefaultSectionBackground,
			TextColor:       constants.DefaultSectionText,
			FlashcardIDs:    datatypes.NewJSONSlice([]string{}),
		}

		collection = &models.Collection{
			ID:              collectionID,
			UserID:          user.ID,
			Title:           title,
			TotalNoSections: 1,
			SectionIDs:      datatypes.NewJSONSlice([]string{sectionID}),
		}

		if err := tx.Sections().Create(mainSection); err != nil {
			return fmt.Errorf("failed to create default section: %w", err)
		}
		if err := tx.Collections().Create(collection); err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
		if err := tx.Users().Update(user); err != nil {
			return fmt.Errorf("failed to update user counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return collection, nil
}

// Rename changes a collection's title.
func (s *CollectionService) Rename(collectionID, newTitle string) (*models.Collection, error) {
	collection, err := s.store.Collections().FindByID(collectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to find collection: %w", err)
	}

	collection.Title = newTitle
	if err := s.store.Collections().Update(collection); err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	return collection, nil
}

// Delete removes a collection with all of its sections and flashcards and
// corrects the owner's counters, clamped at zero. The whole cascade is one
// transaction: a failure part-way rolls everything back.
func (s *CollectionService) Delete(collectionID, requesterID string) error {
	return s.store.Transaction(func(tx repository.Store) error {
		collection, err := tx.Collections().FindByID(collectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCollectionNotFound
			}
			return fmt.Errorf("failed to find collection: %w", err)
		}

		if collection.UserID != requesterID {
			return ErrNotCollectionOwner
		}

		sections, err := tx.Sections().ListByCollection(collectionID)
		if err != nil {
			return fmt.Errorf("failed to list sections: %w", err)
		}

		sectionIDs := make([]string, len(sections))
		for i, section := range sections {
			sectionIDs[i] = section.ID
		}

		deletedCards, err := tx.Flashcards().CountBySections(sectionIDs)
		if err != nil {
			return fmt.Errorf("failed to count flashcards: %w", err)
		}

		if err := tx.Flashcards().DeleteBySections(sectionIDs); err != nil {
			return fmt.Errorf("failed to delete flashcards: %w", err)
		}
		if err := tx.Sections().DeleteByCollection(collectionID); err != nil {
			return fmt.Errorf("failed to delete sections: %w", err)
		}
		if err := tx.Collections().Delete(collectionID); err != nil {
			return fmt.Errorf("failed to delete collection: %w", err)
		}

		user, err := tx.Users().FindByIDForUpdate(collection.UserID)
		if err != nil {
			// The collection is gone either way; a missing owner just
			// leaves no counters to correct.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to find user: %w", err)
		}

		user.TotalCollections = max(0, user.TotalCollections-1)
		user.TotalSections = max(0, user.TotalSections-len(sections))
		user.TotalFlashcards = max(0, user.TotalFlashcards-int(deletedCards))

		if err := tx.Users().Update(user); err != nil {
			return fmt.Errorf("failed to update user counters: %w", err)
		}
		return nil
	})
}
