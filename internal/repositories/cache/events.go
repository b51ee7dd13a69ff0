package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ChangeEvent describes a row mutation. Consumers treat any event as
// invalidate-and-refetch; the payload intentionally carries no row data
// because the database is always the source of truth.
type ChangeEvent struct {
	Table string `json:"table"`
	Op    string `json:"op"` // INSERT, UPDATE or DELETE
	ID    uint   `json:"id"`
}

// Publisher emits change events on per-table Redis channels.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

func channelFor(table string) string {
	return fmt.Sprintf("events:%s", table)
}

func (p *Publisher) Publish(ctx context.Context, table, op string, id uint) error {
	payload, err := json.Marshal(ChangeEvent{Table: table, Op: op, ID: id})
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, channelFor(table), payload).Err()
}
