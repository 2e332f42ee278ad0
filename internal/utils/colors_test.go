package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidHexColor(t *testing.T) {
	valid := []string{"#5552bb", "#ffffff", "#ABC", "#000", "#AABBCC"}
	for _, c := range valid {
		assert.True(t, IsValidHexColor(c), c)
	}

	invalid := []string{"", "red", "5552bb", "#12345", "#GGG", "#12", "#1234567", "# abc"}
	for _, c := range invalid {
		assert.False(t, IsValidHexColor(c), c)
	}
}
