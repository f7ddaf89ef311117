package ports

import (
	"context"

	"github.com/Vipul-2220/EventMate/internal/domain"
)

// RegistrationRepo exposes the conditional attendee mutations. Add and
// Remove must each be atomic with respect to concurrent callers on the
// same event.
type RegistrationRepo interface {
	Add(ctx context.Context, eventID, userID string) error
	Remove(ctx context.Context, eventID, userID string) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.UserSummary, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
}
