package services

import "github.com/campuscanteen/canteen-app/models"

// DefaultTaxRateBP is the canteen tax rate in basis points (5%).
const DefaultTaxRateBP = 500

// CartLine is what the client submits when placing an order. It only
// references the menu item; price and name are snapshotted server-side.
type CartLine struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Notes      string `json:"notes"`
}

type PricedCart struct {
	Subtotal int `json:"subtotal"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}

// PriceOrderItems computes subtotal, tax and total over snapshotted order
// items. All amounts are integers in the smallest display unit; the tax is
// rounded half-up so subtotal+tax always reconciles with the total. The
// result is frozen into the order at creation and never recomputed.
func PriceOrderItems(items []models.OrderItem, taxRateBP int) PricedCart {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}
	tax := roundHalfUpBP(subtotal, taxRateBP)
	return PricedCart{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// roundHalfUpBP returns amount*rateBP/10000 rounded half-up, in integer
// arithmetic so money never touches floating point.
func roundHalfUpBP(amount, rateBP int) int {
	return (amount*rateBP + 5000) / 10000
}
