package models

import (
	"time"

	"gorm.io/gorm"
)

// Room statuses. Reserved is accepted by the status update endpoint but no
// workflow drives it automatically.
const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
	RoomStatusReserved    = "Reserved"
)

type Room struct {
	gorm.Model

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomTypeID uint   `json:"roomTypeId" gorm:"column:room_type_id;index"`
	Status     string `json:"status" gorm:"size:32;default:Available"`

	// Weak reference to the current occupant, set only while Occupied.
	CurrentGuestID *uint      `json:"currentGuestId,omitempty" gorm:"column:current_guest_id"`
	CheckInDate    *time.Time `json:"checkInDate,omitempty" gorm:"column:check_in_date"`
	CheckOutDate   *time.Time `json:"checkOutDate,omitempty" gorm:"column:check_out_date"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}

func (r *Room) IsAvailable() bool {
	return r.Status == RoomStatusAvailable
}
