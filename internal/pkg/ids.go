package pkg

import (
	"strings"

	"github.com/google/uuid"
)

const guestSessionPrefix = "guest-"

// GenerateNewSessionID - generates a new guest session ID.
func GenerateNewSessionID() string {
	return guestSessionPrefix + uuid.NewString()
}

// IsGuestSessionID reports whether id has the shape GenerateNewSessionID produces.
func IsGuestSessionID(id string) bool {
	rest, ok := strings.CutPrefix(id, guestSessionPrefix)
	if !ok {
		return false
	}

	_, err := uuid.Parse(rest)
	return err == nil
}
