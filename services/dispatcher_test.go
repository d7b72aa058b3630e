package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/repository"
)

func TestNotifyCreatesUnreadRecord(t *testing.T) {
	store, dispatcher, _, _ := newTestServices(t)

	orderID := uint(12)
	n, err := dispatcher.Notify(5, "Order ready", "Your order #12 is ready for pickup", models.NotificationStatus, &orderID)
	require.NoError(t, err)
	assert.False(t, n.Read)
	require.NotNil(t, n.UserID)
	assert.Equal(t, uint(5), *n.UserID)

	notifs, err := store.ListNotifications(5, false)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.False(t, notifs[0].Read)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	store, dispatcher, _, _ := newTestServices(t)

	n, err := dispatcher.Notify(5, "Hello", "message", models.NotificationInfo, nil)
	require.NoError(t, err)

	require.NoError(t, dispatcher.MarkRead(n.ID))
	require.NoError(t, dispatcher.MarkRead(n.ID), "re-marking a read notification is a no-op")

	notifs, err := store.ListNotifications(5, false)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.True(t, notifs[0].Read)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	_, dispatcher, _, _ := newTestServices(t)
	require.ErrorIs(t, dispatcher.MarkRead(404), repository.ErrNotFound)
}

func TestMarkAllRead(t *testing.T) {
	store, dispatcher, _, _ := newTestServices(t)

	for i := 0; i < 3; i++ {
		_, err := dispatcher.Notify(5, "Update", "msg", models.NotificationStatus, nil)
		require.NoError(t, err)
	}
	other, err := dispatcher.Notify(6, "Update", "msg", models.NotificationStatus, nil)
	require.NoError(t, err)

	// One of the three is already read.
	notifs, err := store.ListNotifications(5, false)
	require.NoError(t, err)
	require.NoError(t, dispatcher.MarkRead(notifs[0].ID))

	marked, err := dispatcher.MarkAllRead(5)
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	notifs, err = store.ListNotifications(5, false)
	require.NoError(t, err)
	for _, n := range notifs {
		assert.True(t, n.Read)
	}

	// Other users are untouched.
	otherNotifs, err := store.ListNotifications(6, false)
	require.NoError(t, err)
	require.Len(t, otherNotifs, 1)
	assert.Equal(t, other.ID, otherNotifs[0].ID)
	assert.False(t, otherNotifs[0].Read)
}

// flakyNotificationRepo fails the read-flag update for chosen IDs.
type flakyNotificationRepo struct {
	repository.NotificationRepository
	failIDs map[uint]bool
}

func (f *flakyNotificationRepo) UpdateNotificationReadFlag(id uint, read bool) error {
	if f.failIDs[id] {
		return repository.ErrStorageUnavailable
	}
	return f.NotificationRepository.UpdateNotificationReadFlag(id, read)
}

func TestMarkAllReadReportsPartialFailure(t *testing.T) {
	store, _, _, _ := newTestServices(t)
	flaky := &flakyNotificationRepo{NotificationRepository: store, failIDs: map[uint]bool{}}
	dispatcher := NewDispatcher(flaky)

	var ids []uint
	for i := 0; i < 3; i++ {
		n, err := dispatcher.Notify(5, "Update", "msg", models.NotificationStatus, nil)
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}
	flaky.failIDs[ids[1]] = true

	marked, err := dispatcher.MarkAllRead(5)
	require.ErrorIs(t, err, repository.ErrStorageUnavailable)
	assert.Equal(t, 2, marked, "successes are still counted")
	assert.Contains(t, err.Error(), "1 notifications left unread")
}
