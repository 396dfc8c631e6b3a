package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ReservationReferenceLength is the size of the short handle guests write
// down at check-in and must present again at check-out.
const ReservationReferenceLength = 8

// NewReservationReference returns the first 8 hex chars of a fresh UUID,
// e.g. "3f2a9c1d". Uniqueness is enforced by the DB index; callers retry on
// the rare collision.
func NewReservationReference() string {
	return uuid.NewString()[:ReservationReferenceLength]
}

var referencePattern = regexp.MustCompile(`^[a-f0-9]{8}$`)

// NormalizeReservationReference trims and lowercases user input so a pasted
// "  3F2A9C1D " still resolves.
func NormalizeReservationReference(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}

func IsValidReservationReference(ref string) bool {
	return referencePattern.MatchString(NormalizeReservationReference(ref))
}
