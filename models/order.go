package models

import "time"

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

type Order struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CustomerID   uint   `gorm:"not null;index" json:"customer_id"`
	CustomerName string `gorm:"type:varchar(255);not null" json:"customer_name"`
	Status       string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	// TotalAmount is frozen at creation and never recomputed.
	TotalAmount      int         `gorm:"not null" json:"total_amount"`
	EstimatedMinutes *int        `json:"estimated_minutes,omitempty"`
	RejectionReason  *string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	PaymentMethod    string      `gorm:"type:varchar(10);not null" json:"payment_method"`
	Items            []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt        time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"not null" json:"updated_at"`
}

// Terminal reports whether no further status change is permitted.
func (o *Order) Terminal() bool {
	return o.Status == StatusCompleted || o.Status == StatusRejected
}
