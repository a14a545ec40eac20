package realtime

import (
	"log"

	"hostel-management-api/models"
)

// Message is the frame delivered to subscribed connections of a user.
type Message struct {
	Event        string               `json:"event"`
	UserID       string               `json:"user_id"`
	Notification *models.Notification `json:"notification"`
}

// Hub keeps the process-wide registry of websocket connections, grouped
// per user channel. All registry mutation happens on the Run goroutine;
// other goroutines talk to it through the channels.
type Hub struct {
	Clients map[string]map[*Client]struct{}

	RegisterCh   chan *Client
	UnregisterCh chan *Client
	BroadcastCh  chan Message

	bridge *Bridge
}

func NewHub() *Hub {
	return &Hub{
		Clients:      make(map[string]map[*Client]struct{}),
		RegisterCh:   make(chan *Client),
		UnregisterCh: make(chan *Client),
		BroadcastCh:  make(chan Message, 64),
	}
}

// SetBridge attaches a Redis pub/sub bridge so publishes fan out across
// every running instance. The bridge feeds received frames back into
// BroadcastCh.
func (h *Hub) SetBridge(b *Bridge) {
	h.bridge = b
}

// Publish delivers a notification payload to all active connections of
// the user. No delivery guarantee: the durable record is the notification
// row, this is a liveness layer on top of it.
func (h *Hub) Publish(userID string, n *models.Notification) {
	msg := Message{Event: "notification", UserID: userID, Notification: n}

	if h.bridge != nil {
		if err := h.bridge.Publish(msg); err == nil {
			return
		} else {
			log.Printf("realtime: bridge publish failed, delivering locally: %v", err)
		}
	}

	h.BroadcastCh <- msg
}

// Run is the hub dispatcher. Start it once, on its own goroutine.
func (h *Hub) Run() {
	if h.bridge != nil {
		h.bridge.Listen(h.BroadcastCh)
	}

	for {
		select {
		case client := <-h.RegisterCh:
			conns, ok := h.Clients[client.UserID]
			if !ok {
				conns = make(map[*Client]struct{})
				h.Clients[client.UserID] = conns
			}
			conns[client] = struct{}{}
			log.Printf("realtime: user %s joined (%d connections)", client.UserID, len(conns))

		case client := <-h.UnregisterCh:
			if conns, ok := h.Clients[client.UserID]; ok {
				if _, registered := conns[client]; registered {
					delete(conns, client)
					close(client.Send)
					if len(conns) == 0 {
						delete(h.Clients, client.UserID)
					}
				}
			}

		case msg := <-h.BroadcastCh:
			for client := range h.Clients[msg.UserID] {
				select {
				case client.Send <- msg:
				default:
					// Slow consumer, drop the connection.
					delete(h.Clients[msg.UserID], client)
					close(client.Send)
				}
			}
		}
	}
}
