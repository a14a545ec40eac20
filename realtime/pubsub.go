package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

const broadcastChannel = "notify:broadcast"

// Bridge fans published messages out through Redis pub/sub so every
// running instance delivers to its own local connections.
type Bridge struct {
	rdb *redis.Client
	ctx context.Context
}

func NewBridge(addr string) (*Bridge, error) {
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return &Bridge{rdb: rdb, ctx: ctx}, nil
}

func (b *Bridge) Publish(msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.rdb.Publish(b.ctx, broadcastChannel, payload).Err()
}

// Listen subscribes to the broadcast channel and feeds received frames
// into out until the subscription dies.
func (b *Bridge) Listen(out chan<- Message) {
	go func() {
		pubsub := b.rdb.Subscribe(b.ctx, broadcastChannel)
		defer pubsub.Close()

		for raw := range pubsub.Channel() {
			var msg Message
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				log.Printf("realtime: bad bridge payload: %v", err)
				continue
			}
			out <- msg
		}
	}()
}
