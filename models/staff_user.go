package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff roles. Manager satisfies every permission check; the other two only
// satisfy their own tag.
const (
	RoleManager      = "manager"
	RoleFrontDesk    = "front_desk"
	RoleHousekeeping = "housekeeping"
)

type StaffUser struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:150" json:"username"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role      string         `gorm:"size:32" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
