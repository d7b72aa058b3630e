package models

import "time"

// MenuItem is catalog reference data. Orders snapshot name and price at
// creation time, so editing an item never rewrites past orders.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	Category    string    `gorm:"type:varchar(50)" json:"category"`
	Available   bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
