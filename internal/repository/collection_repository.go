package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tmaeda/studycards-api/internal/models"
)

// GormCollectionRepository is a GORM implementation of CollectionRepository
type GormCollectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &GormCollectionRepository{db: db}
}

// Create creates a new collection
func (r *GormCollectionRepository) Create(collection *models.Collection) error {
	return r.db.Create(collection).Error
}

// FindByID finds a collection by ID
func (r *GormCollectionRepository) FindByID(id string) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.First(&collection, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

// FindByIDForUpdate finds a collection by ID with a row lock
func (r *GormCollectionRepository) FindByIDForUpdate(id string) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&collection, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

// ListByUser lists all collections owned by a user
func (r *GormCollectionRepository) ListByUser(userID string) ([]models.Collection, error) {
	var collections []models.Collection
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// Update updates a collection
func (r *GormCollectionRepository) Update(collection *models.Collection) error {
	return r.db.Save(collection).Error
}

// Delete deletes a collection
func (r *GormCollectionRepository) Delete(id string) error {
	return r.db.Delete(&models.Collection{}, "id = ?", id).Error
}
