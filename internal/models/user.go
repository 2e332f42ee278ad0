package models

import "time"

type User struct {
	ID           string    `gorm:"type:varchar(32);primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`

	// Display counters shown on the profile page.
	TotalCollections int `gorm:"not null;default:0" json:"totalCollections"`
	TotalSections    int `gorm:"not null;default:0" json:"totalSections"`
	TotalFlashcards  int `gorm:"not null;default:0" json:"totalFlashcards"`

	// Monotonic sequences used for child id suffixes. Unlike the display
	// counters these are never decremented, so a delete followed by a
	// create can never reuse an id.
	CollectionSeq int `gorm:"not null;default:0" json:"-"`
	SectionSeq    int `gorm:"not null;default:0" json:"-"`
	FlashcardSeq  int `gorm:"not null;default:0" json:"-"`

	// Relations
	Collections []Collection `gorm:"foreignKey:UserID" json:"-"`
	Flashcards  []Flashcard  `gorm:"foreignKey:UserID" json:"-"`
}
