package models

// RoomOccupancy is the room-status side table: one row per room, flipped by
// the reservation ledger on check-in/check-out. Check-in consults this flag,
// not the room row, as the authoritative availability signal.
type RoomOccupancy struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomNumber string `gorm:"column:room_number;uniqueIndex;size:50" json:"roomNumber"`
	Occupied   bool   `gorm:"default:false" json:"occupied"`
}
