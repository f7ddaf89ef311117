package service

import (
	"context"
	"fmt"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/Vipul-2220/EventMate/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// QueryService serves read-only projections for display. It never decides
// capacity — that belongs to the registration path — but it does audit the
// invariant on reads and refuses to render impossible state.
type QueryService struct {
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	regRepo   ports.RegistrationRepo
	logger    logger.Logger
}

func NewQueryService(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	regRepo ports.RegistrationRepo,
	logger logger.Logger,
) *QueryService {
	return &QueryService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		regRepo:   regRepo,
		logger:    logger,
	}
}

// EventWithRoster returns the event with its resolved attendee roster in
// registration order. An attendee set larger than capacity is a store
// defect: it is logged and surfaced, never repaired here.
func (s *QueryService) EventWithRoster(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	attendees, err := s.regRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	if len(attendees) > event.Capacity {
		s.logger.Error("attendee set exceeds capacity",
			logger.String("event_id", eventID),
			logger.Int("capacity", event.Capacity),
			logger.Int("attendees", len(attendees)),
		)
		return nil, domain.ErrInvariantViolation
	}

	organizer, err := s.userRepo.GetByID(ctx, event.OrganizerID)
	if err != nil {
		return nil, fmt.Errorf("get organizer: %w", err)
	}

	return &domain.EventDetails{
		Event:             *event,
		Organizer:         organizer.Summary(),
		RemainingCapacity: domain.RemainingCapacity(event.Capacity, len(attendees)),
		Attendees:         attendees,
	}, nil
}

// RegisteredEvents lists the events the user currently holds a
// registration for, soonest first.
func (s *QueryService) RegisteredEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	return s.eventRepo.ListRegisteredByUser(ctx, userID)
}

// OrganizedEvents lists the events the user created, newest first.
func (s *QueryService) OrganizedEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	return s.eventRepo.ListByOrganizer(ctx, userID)
}

// Search returns a filtered, sorted page of events. Unset filter fields
// fall back to the public defaults: published events, soonest first.
func (s *QueryService) Search(ctx context.Context, f domain.EventFilter) (*domain.EventPage, error) {
	if f.Status == "" {
		f.Status = domain.EventStatusPublished
	}
	if f.SortBy == "" {
		f.SortBy = "date"
	}
	if f.SortOrder == "" {
		f.SortOrder = "asc"
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}

	events, err := s.eventRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	total, err := s.eventRepo.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	totalPages := (total + f.Limit - 1) / f.Limit

	return &domain.EventPage{
		Events:      events,
		Total:       total,
		CurrentPage: f.Page,
		TotalPages:  totalPages,
	}, nil
}
