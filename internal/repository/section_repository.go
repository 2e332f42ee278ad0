package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tmaeda/studycards-api/internal/models"
)

// GormSectionRepository is a GORM implementation of SectionRepository
type GormSectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new SectionRepository
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &GormSectionRepository{db: db}
}

// Create creates a new section
func (r *GormSectionRepository) Create(section *models.Section) error {
	return r.db.Create(section).Error
}

// FindByID finds a section by ID
func (r *GormSectionRepository) FindByID(id string) (*models.Section, error) {
	var section models.Section
	if err := r.db.First(&section, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// FindByIDForUpdate finds a section by ID with a row lock
func (r *GormSectionRepository) FindByIDForUpdate(id string) (*models.Section, error) {
	var section models.Section
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&section, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// ListByCollection lists all sections under a collection
func (r *GormSectionRepository) ListByCollection(collectionID string) ([]models.Section, error) {
	var sections []models.Section
	if err := r.db.Where("collection_id = ?", collectionID).
		Order("created_at ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// Update updates a section
func (r *GormSectionRepository) Update(section *models.Section) error {
	return r.db.Save(section).Error
}

// Delete deletes a section
func (r *GormSectionRepository) Delete(id string) error {
	return r.db.Delete(&models.Section{}, "id = ?", id).Error
}

// DeleteByCollection deletes every section under a collection
func (r *GormSectionRepository) DeleteByCollection(collectionID string) error {
	return r.db.Where("collection_id = ?", collectionID).Delete(&models.Section{}).Error
}
