package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-management-api/models"
)

// GetNotifications lists a user's notifications, newest first. Zero
// matches is an empty list, not an error. unreadOnly=1 filters to unread.
func GetNotifications(c *gin.Context) {
	userID := c.Param("userId")

	q := getDB().Where("user_id = ?", userID)
	unreadOnly := strings.TrimSpace(c.Query("unreadOnly"))
	if unreadOnly == "1" || strings.EqualFold(unreadOnly, "true") {
		q = q.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := q.Order("create_at DESC").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetNotificationCounter returns the user's unread count.
func GetNotificationCounter(c *gin.Context) {
	userID := c.Param("userId")

	var n int64
	if err := getDB().Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": n})
}

// MarkNotificationRead flips the read flag on one notification.
func MarkNotificationRead(c *gin.Context) {
	id := c.Param("id")

	var notification models.Notification
	if err := getDB().Where("id = ?", id).First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found."})
		return
	}

	now := time.Now()
	if err := getDB().Model(&models.Notification{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_read":   true,
			"update_at": now,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	notification.IsRead = true
	notification.UpdateAt = &now

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read.", "notification": notification})
}

// MarkAllNotificationsRead flips the read flag on every notification of a
// user in one batched write. Idempotent. 404 when the user has none.
func MarkAllNotificationsRead(c *gin.Context) {
	userID := c.Param("userId")

	var n int64
	if err := getDB().Model(&models.Notification{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No notifications found for the user."})
		return
	}

	if err := getDB().Model(&models.Notification{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"is_read":   true,
			"update_at": time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read."})
}

// DeleteNotification removes one notification.
func DeleteNotification(c *gin.Context) {
	id := c.Param("id")

	var notification models.Notification
	if err := getDB().Where("id = ?", id).First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found."})
		return
	}

	if err := getDB().Where("id = ?", id).Delete(&models.Notification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully."})
}

// DeleteAllNotifications removes every notification of a user in one
// batched delete. 404 when the user has none.
func DeleteAllNotifications(c *gin.Context) {
	userID := c.Param("userId")

	var n int64
	if err := getDB().Model(&models.Notification{}).
		Where("user_id = ?", userID).Count(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No notifications found for the user."})
		return
	}

	if err := getDB().Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications deleted successfully."})
}
