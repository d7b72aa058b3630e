package services

import (
	"fmt"
	"time"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/repository"
	"github.com/campuscanteen/canteen-app/utils"
)

// Dispatcher creates notification records in reaction to lifecycle events.
// Delivery is polling-based: there is no guarantee beyond the durable write.
type Dispatcher struct {
	notifications repository.NotificationRepository
	now           func() time.Time
}

func NewDispatcher(notifications repository.NotificationRepository) *Dispatcher {
	return &Dispatcher{notifications: notifications, now: time.Now}
}

// Notify persists an unread notification for one user.
func (d *Dispatcher) Notify(userID uint, title, message, notifType string, orderID *uint) (*models.Notification, error) {
	uid := userID
	n := &models.Notification{
		UserID:    &uid,
		Title:     title,
		Message:   message,
		Type:      notifType,
		OrderID:   orderID,
		CreatedAt: d.now(),
	}
	if err := d.notifications.PutNotification(n); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Notification %d created for user %d: %s", n.ID, userID, title)
	return n, nil
}

// NotifyStaff persists a single staff-channel notification (nil UserID),
// visible to every staff account.
func (d *Dispatcher) NotifyStaff(title, message, notifType string, orderID *uint) (*models.Notification, error) {
	n := &models.Notification{
		Title:     title,
		Message:   message,
		Type:      notifType,
		OrderID:   orderID,
		CreatedAt: d.now(),
	}
	if err := d.notifications.PutNotification(n); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Notification %d created for staff channel: %s", n.ID, title)
	return n, nil
}

// MarkRead flips a notification to read. Re-marking an already-read
// notification is a no-op, not an error.
func (d *Dispatcher) MarkRead(id uint) error {
	return d.notifications.UpdateNotificationReadFlag(id, true)
}

// MarkAllRead marks every unread notification owned by the user and returns
// how many were flipped. If some writes fail the count of successes is still
// returned along with an error naming the number left unread.
func (d *Dispatcher) MarkAllRead(userID uint) (int, error) {
	notifs, err := d.notifications.ListNotifications(userID, false)
	if err != nil {
		return 0, err
	}
	marked := 0
	failed := 0
	for _, n := range notifs {
		if n.Read {
			continue
		}
		if err := d.notifications.UpdateNotificationReadFlag(n.ID, true); err != nil {
			failed++
			continue
		}
		marked++
	}
	if failed > 0 {
		return marked, fmt.Errorf("%w: %d notifications left unread", repository.ErrStorageUnavailable, failed)
	}
	return marked, nil
}
