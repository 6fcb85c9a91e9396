package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from the publisher and persists them. A
// store failure is logged and skipped rather than stopping the worker, so a
// flaky sink never takes the trail down with it.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run processes events until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				if w.logger != nil {
					w.logger.Error("audit append failed",
						"event_id", event.ID,
						"error", err,
					)
				}
			}
		}
	}
}
