package models

import (
	"time"
)

// Reservation is one stay. Rows are never deleted; checkout mutates the row
// in place so the ledger keeps every completed stay for reporting.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ReferenceID string `gorm:"column:reference_id;uniqueIndex;size:16" json:"referenceId"`

	GuestID    uint   `gorm:"index;column:guest_id" json:"guestId"`
	RoomNumber string `gorm:"column:room_number;size:50;index" json:"roomNumber"`

	CheckInAt  time.Time  `gorm:"column:check_in_at" json:"checkInAt"`
	CheckOutAt *time.Time `gorm:"column:check_out_at" json:"checkOutAt,omitempty"`
	Paid       bool       `gorm:"default:false" json:"paid"`

	Guest Guest `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
}

// Active reports whether the stay has not been checked out yet.
func (r *Reservation) Active() bool {
	return r.CheckOutAt == nil
}
