package models

// AmenityStock tracks the supplementary request pool (extra beds, cribs,
// upgrades). Counts only go down; there is no restock within a session.
type AmenityStock struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"uniqueIndex;size:100" json:"name"`
	Remaining int    `json:"remaining"`
}
