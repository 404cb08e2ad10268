// Package converter holds small conversions between wire identifiers and
// their typed forms.
package converter

import (
	"github.com/google/uuid"
)

// StrToUUID parses a merchant or transaction identifier carried as a string,
// as on websocket subjects. Malformed input maps to uuid.Nil rather than an
// error so callers can treat it as absent.
func StrToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// UUIDToStr renders an identifier for subjects and log fields
func UUIDToStr(id uuid.UUID) string {
	return id.String()
}
