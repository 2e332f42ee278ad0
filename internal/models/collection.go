package models

import (
	"time"

	"gorm.io/datatypes"
)

type Collection struct {
	ID                string                      `gorm:"type:varchar(64);primarykey" json:"id"`
	UserID            string                      `gorm:"type:varchar(32);not null;index" json:"userId"`
	Title             string                      `gorm:"type:varchar(255);not null" json:"title"`
	TotalNoSections   int                         `gorm:"not null;default:0" json:"totalNoSections"`
	TotalNoFlashcards int                         `gorm:"not null;default:0" json:"totalNoFlashcards"`
	SectionIDs        datatypes.JSONSlice[string] `gorm:"type:json" json:"sectionIds"`
	CreatedAt         time.Time                   `json:"-"`
	UpdatedAt         time.Time                   `json:"-"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Sections []Section `gorm:"foreignKey:CollectionID" json:"-"`
}
