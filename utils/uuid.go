package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateShortID returns a compact unique identifier without hyphens,
// used for transaction record ids.
func GenerateShortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
