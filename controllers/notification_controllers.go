package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/repository"
	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

type NotificationController struct {
	Dispatcher    *services.Dispatcher
	Notifications repository.NotificationRepository
}

func NewNotificationController(dispatcher *services.Dispatcher, notifications repository.NotificationRepository) *NotificationController {
	return &NotificationController{Dispatcher: dispatcher, Notifications: notifications}
}

// GetNotifications -> the caller's notifications, newest first. Staff also
// see the staff channel. Clients poll this endpoint.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID, _, role := callerIdentity(c)

	notifs, err := nc.Notifications.ListNotifications(userID, role == models.RoleStaff)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notifications", notifs)
}

// MarkRead -> flip one notification to read. Idempotent.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	idStr := c.Param("notif_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := nc.Dispatcher.MarkRead(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification marked read", gin.H{"notif_id": id})
}

// MarkAllRead -> flip every unread notification the caller owns.
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	userID, _, _ := callerIdentity(c)

	marked, err := nc.Dispatcher.MarkAllRead(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notifications marked read", gin.H{"marked": marked})
}
