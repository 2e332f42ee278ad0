package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/tmaeda/studycards-api/internal/constants"
)

// NewUserID generates a random identifier for a new user.
func NewUserID() (string, error) {
	id, err := gonanoid.New(constants.UserIDLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate user id: %w", err)
	}
	return id, nil
}

// CollectionID derives a collection id from its owner and a sequence number.
func CollectionID(userID string, seq int) string {
	return fmt.Sprintf("%s.coll.%d", userID, seq)
}

// SectionID derives a section id from its parent collection and a sequence number.
func SectionID(collectionID string, seq int) string {
	return fmt.Sprintf("%s.sec.%d", collectionID, seq)
}

// FlashcardID derives a flashcard id from its parent section and a sequence number.
func FlashcardID(sectionID string, seq int) string {
	return fmt.Sprintf("%s.fc.%d", sectionID, seq)
}
