package domain

import (
	"strings"

	"github.com/google/uuid"
)

// IsSnowflake reports whether id looks like a Discord user, role, guild or
// channel id: 17 to 19 decimal digits.
func IsSnowflake(id string) bool {
	if len(id) < 17 || len(id) > 19 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsSubjectID reports whether id is a canonical RFC 4122 uuid as handed out
// by storage (versions 1 to 5).
func IsSubjectID(id string) bool {
	if len(id) != 36 {
		return false
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	if v := parsed.Version(); v < 1 || v > 5 {
		return false
	}
	return parsed.Variant() == uuid.RFC4122
}

// NormalizeSubjectID lower-cases a subject id so ids decoded from legacy
// components compare equal to the stored ones.
func NormalizeSubjectID(id string) string {
	return strings.ToLower(id)
}
