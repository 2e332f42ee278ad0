package models

import (
	"time"

	"gorm.io/datatypes"
)

type Section struct {
	ID                string                      `gorm:"type:varchar(96);primarykey" json:"id"`
	CollectionID      string                      `gorm:"type:varchar(64);not null;index" json:"collectionId"`
	Name              string                      `gorm:"type:varchar(255);not null" json:"name"`
	BackgroundColor   string                      `gorm:"type:varchar(7)" json:"backgroundColor"`
	TextColor         string                      `gorm:"type:varchar(7)" json:"textColor"`
	TotalNoFlashcards int                         `gorm:"not null;default:0" json:"totalNoFlashcards"`
	FlashcardIDs      datatypes.JSONSlice[string] `gorm:"type:json" json:"flashcardIds"`
	CreatedAt         time.Time                   `json:"-"`
	UpdatedAt         time.Time                   `json:"-"`

	// Relations
	Collection Collection  `gorm:"foreignKey:CollectionID" json:"-"`
	Flashcards []Flashcard `gorm:"foreignKey:SectionID" json:"-"`
}
