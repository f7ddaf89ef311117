package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/Vipul-2220/EventMate/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RegistrationService is the only path that mutates the attendee
// relationship. It enforces capacity and idempotency through the store's
// conditional mutations and never retries precondition failures.
type RegistrationService struct {
	regRepo   ports.RegistrationRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	logger    logger.Logger
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Register adds userID to the event's attendee set and returns the updated
// event. Precondition failures surface in a fixed order: event missing,
// not published, full, already registered. A detected write-write conflict
// is retried once before being surfaced as transient.
func (s *RegistrationService) Register(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if err = s.addOnce(ctx, eventID, userID); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("reload event: %w", err)
	}

	s.logger.Info("user registered",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRegistered(context.WithoutCancel(ctx), user, event)

	return event, nil
}

func (s *RegistrationService) addOnce(ctx context.Context, eventID, userID string) error {
	err := s.regRepo.Add(ctx, eventID, userID)
	if err != nil && errors.Is(err, domain.ErrTransientStore) {
		s.logger.Warn("registration conflict, retrying once",
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
		)
		err = s.regRepo.Add(ctx, eventID, userID)
	}
	if err != nil {
		return fmt.Errorf("add attendee: %w", err)
	}
	return nil
}

// Unregister removes userID from the event's attendee set. Removing a pair
// that was never registered is an error, not a state change.
func (s *RegistrationService) Unregister(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	err = s.regRepo.Remove(ctx, eventID, userID)
	if err != nil && errors.Is(err, domain.ErrTransientStore) {
		s.logger.Warn("unregistration conflict, retrying once",
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
		)
		err = s.regRepo.Remove(ctx, eventID, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("remove attendee: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("reload event: %w", err)
	}

	s.logger.Info("user unregistered",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyUnregistered(context.WithoutCancel(ctx), user, event)

	return event, nil
}
