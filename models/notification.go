package models

import "time"

const (
	NotificationOrder   = "order"
	NotificationPayment = "payment"
	NotificationStatus  = "status"
	NotificationInfo    = "info"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// UserID nil means the notification goes to the staff channel and is
	// visible to every staff account.
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Title     string    `gorm:"type:varchar(100);not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"type:varchar(20);not null;default:'info'" json:"type"`
	OrderID   *uint     `gorm:"index" json:"order_id,omitempty"`
	Read      bool      `gorm:"column:is_read;not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
