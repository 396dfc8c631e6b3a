package models

import "time"

// Task kinds. Cleaning entries come from the batch cleaning cycle, service
// entries from ad hoc room-service requests. One flat record covers both
// variants; RequestType is set for service entries only.
const (
	TaskKindCleaning = "cleaning"
	TaskKindService  = "service"
)

type TaskLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Kind        string    `gorm:"size:16;index" json:"kind"`
	RoomNumber  string    `gorm:"column:room_number;size:50" json:"roomNumber"`
	RequestType string    `gorm:"column:request_type;size:100" json:"requestType,omitempty"`
	LoggedAt    time.Time `gorm:"column:logged_at" json:"loggedAt"`

	CreatedAt time.Time `json:"-"`
}
