package ports

import (
	"context"

	"github.com/Vipul-2220/EventMate/internal/domain"
)

// Notifier is best-effort: delivery failures never affect registration
// state.
type Notifier interface {
	NotifyRegistered(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyUnregistered(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyEventCancelled(ctx context.Context, user *domain.User, event *domain.Event)
}
