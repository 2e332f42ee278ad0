package dto

import (
	"github.com/tmaeda/studycards-api/internal/models"
)

// SectionDetailDTO is a section with its flashcards embedded.
type SectionDetailDTO struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	BackgroundColor   string             `json:"backgroundColor"`
	TextColor         string             `json:"textColor"`
	TotalNoFlashcards int                `json:"totalNoFlashcards"`
	Flashcards        []models.Flashcard `json:"flashcards"`
}

// CollectionDetailDTO is the fully nested collection view.
type CollectionDetailDTO struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	UserID   string             `json:"userId"`
	Sections []SectionDetailDTO `json:"sections"`
}

// ToSectionDetailDTO converts a Section model and its flashcards
func ToSectionDetailDTO(section models.Section, flashcards []models.Flashcard) SectionDetailDTO {
	if flashcards == nil {
		flashcards = []models.Flashcard{}
	}
	return SectionDetailDTO{
		ID:                section.ID,
		Name:              section.Name,
		BackgroundColor:   section.BackgroundColor,
		TextColor:         section.TextColor,
		TotalNoFlashcards: section.TotalNoFlashcards,
		Flashcards:        flashcards,
	}
}
