package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tmaeda/studycards-api/internal/constants"
	"github.com/tmaeda/studycards-api/internal/models"
	"github.com/tmaeda/studycards-api/internal/repository"
	"github.com/tmaeda/studycards-api/internal/utils"
)

var (
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrNotFlashcardOwner = errors.New("flashcard does not belong to this user")
)

// FlashcardService provides business logic for flashcard operations.
type FlashcardService struct {
	store repository.Store
}

// NewFlashcardService creates a new FlashcardService.
func NewFlashcardService(store repository.Store) *FlashcardService {
	return &FlashcardService{
		store: store,
	}
}

// ListBySection returns the flashcards in a section owned by the user.
func (s *FlashcardService) ListBySection(sectionID, userID string) ([]models.Flashcard, error) {
	cards, err := s.store.Flashcards().ListBySectionAndUser(sectionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcards: %w", err)
	}
	return cards, nil
}

// ListBookmarked returns the user's bookmarked flashcards.
func (s *FlashcardService) ListBookmarked(userID string) ([]models.Flashcard, error) {
	cards, err := s.store.Flashcards().ListBookmarked(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarked flashcards: %w", err)
	}
	return cards, nil
}

// NewFlashcard is one entry of a bulk-create request.
type NewFlashcard struct {
	Question string
	Answer   string
}

// BulkCreate adds flashcards to a section. Entries with a blank question are
// skipped; counters grow by the number actually created, not the request
// length. Ids come from the owner's running flashcard sequence, with the
// user row locked so concurrent bulk-creates cannot collide.
func (s *FlashcardService) BulkCreate(sectionID, userID string, items []NewFlashcard) ([]models.Flashcard, error) {
	created := make([]models.Flashcard, 0, len(items))

	err := s.store.Transaction(func(tx repository.Store) error {
		user, err := tx.Users().FindByIDForUpdate(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to find user: %w", err)
		}

		section, err := tx.Sections().FindByIDForUpdate(sectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSectionNotFound
			}
			return fmt.Errorf("failed to find section: %w", err)
		}

		collection, err := tx.Collections().FindByIDForUpdate(section.CollectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCollectionNotFound
			}
			return fmt.Errorf("failed to find collection: %w", err)
		}

		for _, item := range items {
			if strings.TrimSpace(item.Question) == "" {
				continue
			}

			user.FlashcardSeq++
			answer := item.Answer
			if answer == "" {
				answer = constants.DefaultAnswer
			}

			card := models.Flashcard{
				ID:         utils.FlashcardID(sectionID, user.FlashcardSeq),
				SectionID:  sectionID,
				UserID:     userID,
				Question:   item.Question,
				Answer:     answer,
				Bookmarked: false,
			}
			if err := tx.Flashcards().Create(&card); err != nil {
				return fmt.Errorf("failed to create flashcard: %w", err)
			}
			created = append(created, card)
		}

		added := len(created)
		user.TotalFlashcards += added
		collection.TotalNoFlashcards += added
		section.TotalNoFlashcards += added
		for _, card := range created {
			section.FlashcardIDs = append(section.FlashcardIDs, card.ID)
		}

		if err := tx.Users().Update(user); err != nil {
			return fmt.Errorf("failed to update user counters: %w", err)
		}
		if err := tx.Collections().Update(collection); err != nil {
			return fmt.Errorf("failed to update collection: %w", err)
		}
		if err := tx.Sections().Update(section); err != nil {
			return fmt.Errorf("failed to update section: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// EditFlashcardInput carries the optional changes to a flashcard. Nil fields
// are left untouched, which keeps an absent bookmarked flag distinct from an
// explicit false.
type EditFlashcardInput struct {
	FlashcardID string
	UserID      *string
	Question    *string
	Answer      *string
	Bookmarked  *bool
}

// Edit applies the provided fields to a flashcard.
func (s *FlashcardService) Edit(input EditFlashcardInput) (*models.Flashcard, error) {
	card, err := s.store.Flashcards().FindByID(input.FlashcardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlashcardNotFound
		}
		return nil, fmt.Errorf("failed to find flashcard: %w", err)
	}

	if input.UserID != nil && *input.UserID != "" && card.UserID != *input.UserID {
		return nil, ErrNotFlashcardOwner
	}

	if input.Question != nil {
		card.Question = *input.Question
	}
	if input.Answer != nil {
		card.Answer = *input.Answer
	}
	if input.Bookmarked != nil {
		card.Bookmarked = *input.Bookmarked
	}

	if err := s.store.Flashcards().Update(card); err != nil {
		return nil, fmt.Errorf("failed to update flashcard: %w", err)
	}

	return card, nil
}

// Delete removes a flashcard and clamp-decrements the flashcard counters on
// the owner, the collection, and the section.
func (s *FlashcardService) Delete(flashcardID, userID, collectionID string) error {
	return s.store.Transaction(func(tx repository.Store) error {
		card, err := tx.Flashcards().FindByID(flashcardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlashcardNotFound
			}
			return fmt.Errorf("failed to find flashcard: %w", err)
		}

		user, err := tx.Users().FindByIDForUpdate(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to find user: %w", err)
		}

		collection, err := tx.Collections().FindByIDForUpdate(collectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCollectionNotFound
			}
			return fmt.Errorf("failed to find collection: %w", err)
		}

		section, err := tx.Sections().FindByIDForUpdate(card.SectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSectionNotFound
			}
			return fmt.Errorf("failed to find section: %w", err)
		}

		if card.UserID != userID {
			return ErrNotFlashcardOwner
		}

		if err := tx.Flashcards().Delete(card.ID); err != nil {
			return fmt.Errorf("failed to delete flashcard: %w", err)
		}

		user.TotalFlashcards = max(0, user.TotalFlashcards-1)
		collection.TotalNoFlashcards = max(0, collection.TotalNoFlashcards-1)
		section.TotalNoFlashcards = max(0, section.TotalNoFlashcards-1)
		section.FlashcardIDs = removeID(section.FlashcardIDs, card.ID)

		if err := tx.Users().Update(user); err != nil {
			return fmt.Errorf("failed to update user counters: %w", err)
		}
		if err := tx.Collections().Update(collection); err != nil {
			return fmt.Errorf("failed to update collection: %w", err)
		}
		if err := tx.Sections().Update(section); err != nil {
			return fmt.Errorf("failed to update section: %w", err)
		}
		return nil
	})
}
