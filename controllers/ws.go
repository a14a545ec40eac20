package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"hostel-management-api/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type joinFrame struct {
	UserID string `json:"user_id"`
}

// ServeWebSocket upgrades the connection and waits for a join frame
// carrying the user's identity, then subscribes the connection to that
// user's notification channel.
func ServeWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		log.Printf("realtime: upgrade failed: %v", err)
		return
	}

	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	var join joinFrame
	if err := conn.ReadJSON(&join); err != nil || join.UserID == "" {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "join frame required"))
		conn.Close()
		return
	}
	conn.SetReadDeadline(time.Time{})

	client := realtime.NewClient(hub, conn, join.UserID)
	hub.RegisterCh <- client
	client.Run()
}
