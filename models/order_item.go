package models

// OrderItem is one line of an order. Name and Price are copied from the
// menu item when the order is placed.
type OrderItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OrderID    uint   `gorm:"not null;index" json:"order_id"`
	MenuItemID uint   `gorm:"not null" json:"menu_item_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Price      int    `gorm:"not null" json:"price"`
	Quantity   int    `gorm:"not null" json:"quantity"`
	Notes      string `gorm:"type:text" json:"notes"`
}
