package repository

import (
	"errors"

	"github.com/campuscanteen/canteen-app/models"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrStorageUnavailable wraps any other datastore failure. Retrying is
	// the caller's decision, not the repository's.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// OrderFilter narrows ListOrders. A nil CustomerID returns every order.
type OrderFilter struct {
	CustomerID *uint
}

type OrderRepository interface {
	GetOrder(id uint) (*models.Order, error)
	// PutOrder is a full-record upsert, used both for creation and for
	// committing a status transition.
	PutOrder(order *models.Order) error
	// ListOrders returns orders newest first.
	ListOrders(filter OrderFilter) ([]models.Order, error)
}

type NotificationRepository interface {
	PutNotification(n *models.Notification) error
	// ListNotifications returns a user's notifications newest first.
	// With includeStaffChannel it also returns staff-channel broadcasts.
	ListNotifications(userID uint, includeStaffChannel bool) ([]models.Notification, error)
	UpdateNotificationReadFlag(id uint, read bool) error
}

type MenuRepository interface {
	GetMenuItem(id uint) (*models.MenuItem, error)
	ListMenuItems(onlyAvailable bool) ([]models.MenuItem, error)
	PutMenuItem(item *models.MenuItem) error
}

type UserRepository interface {
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	PutUser(user *models.User) error
}
