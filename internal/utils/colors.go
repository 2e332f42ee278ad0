package utils

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)

// IsValidHexColor reports whether s is a #RGB or #RRGGBB color.
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
