package dto

import (
	"time"

	"github.com/tmaeda/studycards-api/internal/models"
)

// UserDTO is the outward representation of an account. The password hash is
// deliberately excluded.
type UserDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	CreatedAt        time.Time `json:"createdAt"`
	TotalCollections int       `json:"totalCollections"`
	TotalSections    int       `json:"totalSections"`
	TotalFlashcards  int       `json:"totalFlashcards"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		CreatedAt:        user.CreatedAt,
		TotalCollections: user.TotalCollections,
		TotalSections:    user.TotalSections,
		TotalFlashcards:  user.TotalFlashcards,
	}
}
