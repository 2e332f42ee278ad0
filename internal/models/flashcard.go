package models

import "time"

type Flashcard struct {
	ID         string    `gorm:"type:varchar(128);primarykey" json:"id"`
	SectionID  string    `gorm:"type:varchar(96);not null;index" json:"sectionId"`
	UserID     string    `gorm:"type:varchar(32);not null;index" json:"userId"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	Bookmarked bool      `gorm:"not null;default:false" json:"bookmarked"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`

	// Relations
	Section Section `gorm:"foreignKey:SectionID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}
