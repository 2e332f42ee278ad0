package repository

import (
	"gorm.io/gorm"
)

// GormStore is a GORM implementation of Store
type GormStore struct {
	db *gorm.DB
}

// NewStore creates a new Store backed by the given database handle
func NewStore(db *gorm.DB) Store {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserRepository {
	return &GormUserRepository{db: s.db}
}

func (s *GormStore) Collections() CollectionRepository {
	return &GormCollectionRepository{db: s.db}
}

func (s *GormStore) Sections() SectionRepository {
	return &GormSectionRepository{db: s.db}
}

func (s *GormStore) Flashcards() FlashcardRepository {
	return &GormFlashcardRepository{db: s.db}
}

// Transaction runs fn with every repository bound to one transaction
func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
