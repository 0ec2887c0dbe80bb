package refresh

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-moment/internal/goal"
	"go-moment/internal/publish"
	"go-moment/internal/widget"
)

// Worker regenerates and publishes the widget snapshot on a fixed
// interval so the home-screen widget keeps a current moment even when
// the user never opens the app.
type Worker struct {
	repo     *goal.Repository
	pub      *publish.Publisher
	interval time.Duration
	stopChan chan struct{}
}

// NewWorker creates a refresh worker.
func NewWorker(repo *goal.Repository, pub *publish.Publisher, intervalMinutes int) *Worker {
	return &Worker{
		repo:     repo,
		pub:      pub,
		interval: time.Duration(intervalMinutes) * time.Minute,
		stopChan: make(chan struct{}),
	}
}

// Start begins the refresh loop
func (w *Worker) Start() {
	log.Printf("[Refresh] Starting snapshot refresh worker (runs every %s)", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run immediately on start
	if _, err := w.RunOnce(context.Background()); err != nil {
		log.Printf("[Refresh] Initial refresh failed: %v", err)
	}

	for {
		select {
		case <-ticker.C:
			if _, err := w.RunOnce(context.Background()); err != nil {
				log.Printf("[Refresh] Refresh cycle failed: %v", err)
			}
		case <-w.stopChan:
			log.Printf("[Refresh] Worker stopped")
			return
		}
	}
}

// Stop terminates the refresh loop.
func (w *Worker) Stop() {
	close(w.stopChan)
}

// RunOnce loads the goal set, generates a snapshot threading the
// previously published mascot state through the core, and publishes
// the result. Also used by the API for on-demand regeneration after a
// logged action.
func (w *Worker) RunOnce(ctx context.Context) (widget.WidgetSnapshot, error) {
	goals, err := w.repo.ListWidgetGoals()
	if err != nil {
		return widget.WidgetSnapshot{}, fmt.Errorf("load goals: %w", err)
	}

	prev := w.pub.PreviousMascot(ctx)
	snap := widget.BuildSnapshot(goals, time.Now(), prev)

	if err := w.pub.Publish(ctx, snap); err != nil {
		return widget.WidgetSnapshot{}, err
	}
	log.Printf("[Refresh] Published snapshot: context=%s mascot=%s goals=%d",
		snap.Context, snap.Mascot.Emotion, len(goals))
	return snap, nil
}
