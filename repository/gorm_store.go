package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/models"
)

// GormStore implements every repository contract over a single GORM
// connection. SQLite and MySQL are both supported, see config.InitDB.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

func (s *GormStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &order, nil
}

func (s *GormStore) PutOrder(order *models.Order) error {
	return wrapErr(s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error)
}

func (s *GormStore) ListOrders(filter OrderFilter) ([]models.Order, error) {
	q := s.db.Preload("Items").Order("created_at desc, id desc")
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, wrapErr(err)
	}
	return orders, nil
}

func (s *GormStore) PutNotification(n *models.Notification) error {
	return wrapErr(s.db.Save(n).Error)
}

func (s *GormStore) ListNotifications(userID uint, includeStaffChannel bool) ([]models.Notification, error) {
	q := s.db.Order("created_at desc, id desc")
	if includeStaffChannel {
		q = q.Where("user_id = ? OR user_id IS NULL", userID)
	} else {
		q = q.Where("user_id = ?", userID)
	}
	var notifs []models.Notification
	if err := q.Find(&notifs).Error; err != nil {
		return nil, wrapErr(err)
	}
	return notifs, nil
}

func (s *GormStore) UpdateNotificationReadFlag(id uint, read bool) error {
	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		return wrapErr(err)
	}
	if n.Read == read {
		return nil
	}
	return wrapErr(s.db.Model(&n).Update("is_read", read).Error)
}

func (s *GormStore) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &item, nil
}

func (s *GormStore) ListMenuItems(onlyAvailable bool) ([]models.MenuItem, error) {
	q := s.db.Order("category asc, name asc")
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}
	var items []models.MenuItem
	if err := q.Find(&items).Error; err != nil {
		return nil, wrapErr(err)
	}
	return items, nil
}

func (s *GormStore) PutMenuItem(item *models.MenuItem) error {
	return wrapErr(s.db.Save(item).Error)
}

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *GormStore) PutUser(user *models.User) error {
	return wrapErr(s.db.Save(user).Error)
}
