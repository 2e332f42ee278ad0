package repository

import (
	"gorm.io/gorm"

	"github.com/tmaeda/studycards-api/internal/models"
)

// GormFlashcardRepository is a GORM implementation of FlashcardRepository
type GormFlashcardRepository struct {
	db *gorm.DB
}

// NewFlashcardRepository creates a new FlashcardRepository
func NewFlashcardRepository(db *gorm.DB) FlashcardRepository {
	return &GormFlashcardRepository{db: db}
}

// Create creates a new flashcard
func (r *GormFlashcardRepository) Create(card *models.Flashcard) error {
	return r.db.Create(card).Error
}

// FindByID finds a flashcard by ID
func (r *GormFlashcardRepository) FindByID(id string) (*models.Flashcard, error) {
	var card models.Flashcard
	if err := r.db.First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ListBySectionAndUser lists flashcards matching both section and owner
func (r *GormFlashcardRepository) ListBySectionAndUser(sectionID, userID string) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	if err := r.db.Where("section_id = ? AND user_id = ?", sectionID, userID).
		Order("created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// ListBookmarked lists a user's bookmarked flashcards
func (r *GormFlashcardRepository) ListBookmarked(userID string) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	if err := r.db.Where("bookmarked = ? AND user_id = ?", true, userID).
		Order("created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// ListBySection lists all flashcards under a section
func (r *GormFlashcardRepository) ListBySection(sectionID string) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	if err := r.db.Where("section_id = ?", sectionID).
		Order("created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// CountBySection counts flashcards under a section
func (r *GormFlashcardRepository) CountBySection(sectionID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Flashcard{}).
		Where("section_id = ?", sectionID).
		Count(&count).Error
	return count, err
}

// CountBySections counts flashcards under any of the given sections
func (r *GormFlashcardRepository) CountBySections(sectionIDs []string) (int64, error) {
	if len(sectionIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Flashcard{}).
		Where("section_id IN ?", sectionIDs).
		Count(&count).Error
	return count, err
}

// Update updates a flashcard
func (r *GormFlashcardRepository) Update(card *models.Flashcard) error {
	return r.db.Save(card).Error
}

// Delete deletes a flashcard
func (r *GormFlashcardRepository) Delete(id string) error {
	return r.db.Delete(&models.Flashcard{}, "id = ?", id).Error
}

// DeleteBySection deletes every flashcard under a section
func (r *GormFlashcardRepository) DeleteBySection(sectionID string) error {
	return r.db.Where("section_id = ?", sectionID).Delete(&models.Flashcard{}).Error
}

// DeleteBySections deletes every flashcard under any of the given sections
func (r *GormFlashcardRepository) DeleteBySections(sectionIDs []string) error {
	if len(sectionIDs) == 0 {
		return nil
	}
	return r.db.Where("section_id IN ?", sectionIDs).Delete(&models.Flashcard{}).Error
}
