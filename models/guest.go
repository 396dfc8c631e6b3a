package models

import (
	"strings"
	"time"
)

// Guest is immutable once registered. IdentityKey is the dedup key derived
// from the normalized name and ID document; it is computed, never assigned.
type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	FullName   string `json:"fullName"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IDDocument string `gorm:"column:id_document" json:"idDocument"`

	IdentityKey string `gorm:"column:identity_key;uniqueIndex;size:255" json:"identityKey"`
}

// GuestIdentityKey normalizes name + document on both the registration and
// the lookup side. Check-in relies on this being the exact same computation.
func GuestIdentityKey(name, idDocument string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "-" + strings.ToLower(strings.TrimSpace(idDocument))
}
