package ports

import (
	"context"
	"time"

	"github.com/Vipul-2220/EventMate/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	UpdateMetadata(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
	Count(ctx context.Context, f domain.EventFilter) (int, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error)
	ListRegisteredByUser(ctx context.Context, userID string) ([]*domain.Event, error)
	CompletePastEvents(ctx context.Context, now time.Time) ([]string, error)
}
