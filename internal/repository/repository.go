package repository

import (
	"github.com/tmaeda/studycards-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByIDForUpdate finds a user by ID and locks the row for the
	// duration of the surrounding transaction
	FindByIDForUpdate(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error
}

// CollectionRepository defines the interface for collection data access
type CollectionRepository interface {
	// Create creates a new collection
	Create(collection *models.Collection) error

	// FindByID finds a collection by ID
	FindByID(id string) (*models.Collection, error)

	// FindByIDForUpdate finds a collection by ID with a row lock
	FindByIDForUpdate(id string) (*models.Collection, error)

	// ListByUser lists all collections owned by a user
	ListByUser(userID string) ([]models.Collection, error)

	// Update updates a collection
	Update(collection *models.Collection) error

	// Delete deletes a collection
	Delete(id string) error
}

// SectionRepository defines the interface for section data access
type SectionRepository interface {
	// Create creates a new section
	Create(section *models.Section) error

	// FindByID finds a section by ID
	FindByID(id string) (*models.Section, error)

	// FindByIDForUpdate finds a section by ID with a row lock
	FindByIDForUpdate(id string) (*models.Section, error)

	// ListByCollection lists all sections under a collection
	ListByCollection(collectionID string) ([]models.Section, error)

	// Update updates a section
	Update(section *models.Section) error

	// Delete deletes a section
	Delete(id string) error

	// DeleteByCollection deletes every section under a collection
	DeleteByCollection(collectionID string) error
}

// FlashcardRepository defines the interface for flashcard data access
type FlashcardRepository interface {
	// Create creates a new flashcard
	Create(card *models.Flashcard) error

	// FindByID finds a flashcard by ID
	FindByID(id string) (*models.Flashcard, error)

	// ListBySectionAndUser lists flashcards matching both section and owner
	ListBySectionAndUser(sectionID, userID string) ([]models.Flashcard, error)

	// ListBookmarked lists a user's bookmarked flashcards
	ListBookmarked(userID string) ([]models.Flashcard, error)

	// ListBySection lists all flashcards under a section
	ListBySection(sectionID string) ([]models.Flashcard, error)

	// CountBySection counts flashcards under a section
	CountBySection(sectionID string) (int64, error)

	// CountBySections counts flashcards under any of the given sections
	CountBySections(sectionIDs []string) (int64, error)

	// Update updates a flashcard
	Update(card *models.Flashcard) error

	// Delete deletes a flashcard
	Delete(id string) error

	// DeleteBySection deletes every flashcard under a section
	DeleteBySection(sectionID string) error

	// DeleteBySections deletes every flashcard under any of the given sections
	DeleteBySections(sectionIDs []string) error
}

// Store bundles the typed repositories over a shared database handle and
// provides transaction scoping for multi-record operations.
type Store interface {
	Users() UserRepository
	Collections() CollectionRepository
	Sections() SectionRepository
	Flashcards() FlashcardRepository

	// Transaction runs fn against a Store whose repositories share a single
	// database transaction. Returning an error rolls everything back.
	Transaction(fn func(Store) error) error
}
