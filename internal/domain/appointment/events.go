package appointment

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StatusChange is published after a genuine status transition is stored.
type StatusChange struct {
	EventID    string    `json:"event_id"`
	BookingID  uint      `json:"booking_id"`
	OldStatus  Status    `json:"old_status"`
	NewStatus  Status    `json:"new_status"`
	ClientID   uint      `json:"client_id"`
	TenantID   uint      `json:"tenant_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Observer interface {
	OnStatusChange(ctx context.Context, ev StatusChange) error
}

type ObserverFunc func(ctx context.Context, ev StatusChange) error

func (f ObserverFunc) OnStatusChange(ctx context.Context, ev StatusChange) error {
	return f(ctx, ev)
}

// Notifier delivers events synchronously to observers in registration
// order. Delivery is best-effort: a failing observer is logged and the
// remaining observers still run.
type Notifier struct {
	mu        sync.RWMutex
	observers []Observer
	logger    *slog.Logger
}

func NewNotifier(logger *slog.Logger, observers ...Observer) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{observers: observers, logger: logger}
}

func (n *Notifier) Register(o Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = append(n.observers, o)
}

func (n *Notifier) Publish(ctx context.Context, ev StatusChange) {
	n.mu.RLock()
	observers := make([]Observer, len(n.observers))
	copy(observers, n.observers)
	n.mu.RUnlock()

	for i, o := range observers {
		if err := o.OnStatusChange(ctx, ev); err != nil {
			n.logger.Warn("status observer failed",
				"observer", i,
				"booking_id", ev.BookingID,
				"new_status", ev.NewStatus,
				"err", err,
			)
		}
	}
}
