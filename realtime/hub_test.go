package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-management-api/models"
)

func receive(t *testing.T, ch chan Message) Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func register(t *testing.T, hub *Hub, userID string) *Client {
	t.Helper()
	client := NewClient(hub, nil, userID)
	select {
	case hub.RegisterCh <- client:
	case <-time.After(time.Second):
		t.Fatal("timed out registering client")
	}
	return client
}

func TestHubDeliversToSubscribedUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := register(t, hub, "S1")

	n := &models.Notification{ID: "n1", UserID: "S1", Message: "hello"}
	hub.Publish("S1", n)

	msg := receive(t, client.Send)
	assert.Equal(t, "notification", msg.Event)
	assert.Equal(t, "S1", msg.UserID)
	assert.Equal(t, "n1", msg.Notification.ID)
}

func TestHubFansOutToAllConnectionsOfUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := register(t, hub, "S1")
	second := register(t, hub, "S1")

	hub.Publish("S1", &models.Notification{ID: "n1", UserID: "S1"})

	assert.Equal(t, "n1", receive(t, first.Send).Notification.ID)
	assert.Equal(t, "n1", receive(t, second.Send).Notification.ID)
}

func TestHubDoesNotCrossUserChannels(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	mine := register(t, hub, "S1")
	other := register(t, hub, "S2")

	hub.Publish("S1", &models.Notification{ID: "n1", UserID: "S1"})

	receive(t, mine.Send)
	select {
	case msg := <-other.Send:
		t.Fatalf("unexpected delivery to other user: %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubPublishToUnknownUserIsNoOp(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Nobody is connected; must not block or panic.
	hub.Publish("ghost", &models.Notification{ID: "n1", UserID: "ghost"})
	hub.Publish("ghost", &models.Notification{ID: "n2", UserID: "ghost"})
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := register(t, hub, "S1")

	select {
	case hub.UnregisterCh <- client:
	case <-time.After(time.Second):
		t.Fatal("timed out unregistering client")
	}

	select {
	case _, open := <-client.Send:
		require.False(t, open, "send channel should be closed after unregister")
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}

	// Further publishes to the departed user must not panic.
	hub.Publish("S1", &models.Notification{ID: "n1", UserID: "S1"})
}
