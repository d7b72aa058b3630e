package services

import (
	"fmt"
	"time"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/repository"
	"github.com/campuscanteen/canteen-app/utils"
)

// OrderService is the facade the HTTP layer talks to. It owns order
// creation and reads and delegates status changes to the Lifecycle.
type OrderService struct {
	orders     repository.OrderRepository
	menu       repository.MenuRepository
	lifecycle  *Lifecycle
	dispatcher *Dispatcher
	taxRateBP  int
	now        func() time.Time
}

func NewOrderService(orders repository.OrderRepository, menu repository.MenuRepository, lifecycle *Lifecycle, dispatcher *Dispatcher, taxRateBP int) *OrderService {
	return &OrderService{
		orders:     orders,
		menu:       menu,
		lifecycle:  lifecycle,
		dispatcher: dispatcher,
		taxRateBP:  taxRateBP,
		now:        time.Now,
	}
}

// PlaceOrder validates the cart, snapshots menu prices, computes the total
// once and persists the order as pending. Nothing is persisted when any
// line is invalid. On success exactly one staff-channel notification is
// dispatched.
func (s *OrderService) PlaceOrder(customerID uint, customerName string, lines []CartLine, paymentMethod string) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: menu item %d", ErrInvalidQuantity, line.MenuItemID)
		}
		menuItem, err := s.menu.GetMenuItem(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   line.Quantity,
			Notes:      line.Notes,
		})
	}

	priced := PriceOrderItems(items, s.taxRateBP)
	now := s.now()
	order := &models.Order{
		CustomerID:    customerID,
		CustomerName:  customerName,
		Status:        models.StatusPending,
		TotalAmount:   priced.Total,
		PaymentMethod: paymentMethod,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.orders.PutOrder(order); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s placed order #%d (%s, %s)",
		customerName, order.ID, utils.FormatCurrencyINR(order.TotalAmount), paymentMethod)
	if _, err := s.dispatcher.NotifyStaff("New order", message, models.NotificationOrder, &order.ID); err != nil {
		utils.ErrorLogger.Printf("order %d: staff notification failed: %v", order.ID, err)
	}

	utils.InfoLogger.Printf("Order %d placed by customer %d, total %d", order.ID, customerID, order.TotalAmount)
	return order, nil
}

// GetOrder returns one order with its items.
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	return s.orders.GetOrder(orderID)
}

// GetOrdersForCustomer returns the customer's orders, newest first.
func (s *OrderService) GetOrdersForCustomer(customerID uint) ([]models.Order, error) {
	id := customerID
	return s.orders.ListOrders(repository.OrderFilter{CustomerID: &id})
}

// GetAllOrders returns every order, newest first. Staff-only; the HTTP
// layer enforces the role before calling.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orders.ListOrders(repository.OrderFilter{})
}

// Transition applies one status change on behalf of actorRole.
func (s *OrderService) Transition(orderID uint, actorRole, target string, params TransitionParams) (*models.Order, error) {
	return s.lifecycle.Transition(orderID, actorRole, target, params)
}
