package publish

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"go-moment/internal/widget"
)

// Publisher tests need a live redis; set TEST_REDIS_ADDR to run them.
func testPublisher(t *testing.T) *Publisher {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis tests")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	if err := rdb.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("flush test db: %v", err)
	}
	return NewPublisher(rdb)
}

func TestPublisher_RoundTrip(t *testing.T) {
	p := testPublisher(t)
	ctx := context.Background()

	if snap, err := p.Latest(ctx); err != nil || snap != nil {
		t.Fatalf("expected no snapshot before publish, got %+v, %v", snap, err)
	}
	if m := p.PreviousMascot(ctx); m != nil {
		t.Fatalf("expected no mascot state before publish, got %+v", m)
	}

	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	snap := widget.BuildSnapshot(nil, now, nil)
	if err := p.Publish(ctx, snap); err != nil {
		t.Fatalf("publish: %v", err)
	}

	got, err := p.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil || got.Version != snap.Version || got.Context != snap.Context {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if m := p.PreviousMascot(ctx); m == nil || m.Emotion != snap.Mascot.Emotion {
		t.Errorf("mascot state not carried: %+v", m)
	}
}

func TestPublisher_LastWriteWins(t *testing.T) {
	p := testPublisher(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	first := widget.BuildSnapshot(nil, base, nil)
	second := widget.BuildSnapshot(nil, base.Add(time.Hour), nil)

	if err := p.Publish(ctx, first); err != nil {
		t.Fatalf("publish first: %v", err)
	}
	if err := p.Publish(ctx, second); err != nil {
		t.Fatalf("publish second: %v", err)
	}

	got, err := p.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil || !got.GeneratedAt.Equal(second.GeneratedAt) {
		t.Errorf("expected the later snapshot, got %+v", got)
	}
}
