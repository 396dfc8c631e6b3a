package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType holds the per-type lookup table: nightly rate, capacity and the
// fixed amenity list. Rooms derive all three from their type; none of it is
// stored per room, so invoices always read the rate that is active when they
// are computed.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string  `gorm:"size:50;uniqueIndex" json:"typeName"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	NightlyRate float64 `gorm:"column:nightly_rate" json:"nightlyRate"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Canonical type names. Presidential exists in the rate table but no rooms
// are seeded for it by default.
const (
	RoomTypeStandard     = "Standard"
	RoomTypeDeluxe       = "Deluxe"
	RoomTypeSuite        = "Suite"
	RoomTypePresidential = "Presidential"
)
