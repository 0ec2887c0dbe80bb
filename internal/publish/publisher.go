package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"go-moment/internal/widget"
)

// Redis keys for the published widget state. The snapshot is written
// with a single SET so rendering surfaces never observe a partial
// snapshot; concurrent publishers race benignly (last write wins).
const (
	snapshotKey = "widget:snapshot"
	mascotKey   = "widget:mascot"

	// SnapshotChannel carries each newly published snapshot to live
	// subscribers (the app's websocket bridge).
	SnapshotChannel = "widget:updates"
)

// Publisher stores the latest widget snapshot and the mascot state the
// next generation needs for the celebration hold.
type Publisher struct {
	rdb *redis.Client
}

// NewPublisher creates a publisher over the given redis client.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish atomically replaces the current snapshot, records its mascot
// state for the next generation, and notifies live subscribers.
func (p *Publisher) Publish(ctx context.Context, snap widget.WidgetSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	mascotRaw, err := json.Marshal(snap.Mascot)
	if err != nil {
		return fmt.Errorf("marshal mascot state: %w", err)
	}

	pipe := p.rdb.Pipeline()
	pipe.Set(ctx, snapshotKey, raw, 0)
	pipe.Set(ctx, mascotKey, mascotRaw, 0)
	pipe.Publish(ctx, SnapshotChannel, raw)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	return nil
}

// Latest returns the last published snapshot, or nil when none has
// been published yet.
func (p *Publisher) Latest(ctx context.Context) (*widget.WidgetSnapshot, error) {
	raw, err := p.rdb.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap widget.WidgetSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// PreviousMascot returns the mascot state of the last published
// snapshot so the celebrate window can be threaded into the next
// generation. A missing or unreadable state reads as nil, which the
// core treats as "no active celebration".
func (p *Publisher) PreviousMascot(ctx context.Context) *widget.MascotState {
	raw, err := p.rdb.Get(ctx, mascotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		log.Printf("[Publisher] Could not load previous mascot state: %v", err)
		return nil
	}
	var m widget.MascotState
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Printf("[Publisher] Ignoring unreadable mascot state: %v", err)
		return nil
	}
	return &m
}

// Subscribe opens a pub/sub subscription on the snapshot channel. The
// caller owns the returned subscription and must close it.
func (p *Publisher) Subscribe(ctx context.Context) *redis.PubSub {
	return p.rdb.Subscribe(ctx, SnapshotChannel)
}
