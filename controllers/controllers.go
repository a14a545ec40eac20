package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostel-management-api/config"
	"hostel-management-api/realtime"
	"hostel-management-api/services"
)

var (
	notifier *services.Notifier
	hub      *realtime.Hub
)

// Init wires the shared collaborators. Called once from main, and from
// tests that exercise the workflow fan-out.
func Init(n *services.Notifier, h *realtime.Hub) {
	notifier = n
	hub = h
}

func getDB() *gorm.DB { return config.DB }

func getCurrentUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}

func getCurrentRole(c *gin.Context) (string, bool) {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok && role != "" {
			return role, true
		}
	}
	return "", false
}
