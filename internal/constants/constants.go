package constants

// BcryptCost is the work factor used when hashing user passwords.
const BcryptCost = 10

// UserIDLength is the length of generated user identifiers.
const UserIDLength = 12

// Defaults applied when creating entities.
const (
	DefaultSectionName       = "Main"
	DefaultSectionBackground = "#5552bb"
	DefaultSectionText       = "#ffffff"
	DefaultAnswer            = "No answer added"
)
