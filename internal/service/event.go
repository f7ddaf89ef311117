package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/Vipul-2220/EventMate/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const maxTitleLen = 100

type EventService struct {
	eventRepo ports.EventRepo
	regRepo   ports.RegistrationRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	logger    logger.Logger
}

func NewEventService(
	eventRepo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// CreateEvent creates a draft event owned by organizerID.
func (s *EventService) CreateEvent(ctx context.Context, organizerID string, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		OrganizerID: organizerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Image:       input.Image,
		Capacity:    input.Capacity,
		Price:       input.Price,
		IsFree:      input.Price == 0,
		Tags:        input.Tags,
		Status:      domain.EventStatusDraft,
		Featured:    input.Featured,
		Contact:     input.Contact,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", organizerID),
	)

	return event, nil
}

// UpdateEvent applies metadata edits. Only the organizer or an admin may
// edit; the attendee set is never touched here. Capacity cannot drop below
// the current attendee count — the store rejects such edits.
func (s *EventService) UpdateEvent(ctx context.Context, eventID, actorID string, actorRole domain.Role, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.OrganizerID != actorID && actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	cancelling := input.Status != nil &&
		*input.Status == domain.EventStatusCancelled &&
		event.Status != domain.EventStatusCancelled

	applyEventUpdate(event, input)

	if err = validateEventUpdate(event); err != nil {
		return nil, err
	}

	if err = s.eventRepo.UpdateMetadata(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated",
		logger.String("event_id", eventID),
		logger.String("status", string(event.Status)),
	)

	if cancelling {
		go s.notifyAttendees(context.WithoutCancel(ctx), event)
	}

	return event, nil
}

// DeleteEvent removes the event and, through the store cascade, its id
// from every user's registered-event set.
func (s *EventService) DeleteEvent(ctx context.Context, eventID, actorID string, actorRole domain.Role) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if event.OrganizerID != actorID && actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err = s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", eventID))

	return nil
}

// CompletePast flips published events whose date has passed to completed.
// Called by the scheduler.
func (s *EventService) CompletePast(ctx context.Context) ([]string, error) {
	ids, err := s.eventRepo.CompletePastEvents(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete past events: %w", err)
	}
	return ids, nil
}

func (s *EventService) notifyAttendees(ctx context.Context, event *domain.Event) {
	attendees, err := s.regRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Error("failed to list attendees for cancellation notice",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, a := range attendees {
		user, err := s.userRepo.GetByID(ctx, a.ID)
		if err != nil {
			s.logger.Error("failed to get attendee for cancellation notice",
				logger.String("user_id", a.ID),
			)
			continue
		}
		s.notifier.NotifyEventCancelled(ctx, user, event)
	}
}

func validateEventInput(input domain.CreateEventInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if len(input.Title) > maxTitleLen {
		return fmt.Errorf("%w: title cannot exceed %d characters", domain.ErrValidation, maxTitleLen)
	}
	if input.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if !slices.Contains(domain.Categories, input.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}
	if input.Date.Before(time.Now()) {
		return fmt.Errorf("%w: date must be in the future", domain.ErrValidation)
	}
	if input.Time == "" {
		return fmt.Errorf("%w: time is required", domain.ErrValidation)
	}
	if err := validateLocation(input.Location); err != nil {
		return err
	}
	if input.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	return nil
}

// Location is all-or-nothing: a partially filled location is rejected at
// the boundary rather than stored with holes.
func validateLocation(loc domain.Location) error {
	if loc.Address == "" || loc.City == "" || loc.State == "" || loc.ZipCode == "" {
		return fmt.Errorf("%w: location requires address, city, state and zip code", domain.ErrValidation)
	}
	return nil
}

var validStatuses = []domain.EventStatus{
	domain.EventStatusDraft, domain.EventStatusPublished,
	domain.EventStatusCancelled, domain.EventStatusCompleted,
}

func validateEventUpdate(e *domain.Event) error {
	if e.Title == "" || len(e.Title) > maxTitleLen {
		return fmt.Errorf("%w: invalid title", domain.ErrValidation)
	}
	if !slices.Contains(domain.Categories, e.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, e.Category)
	}
	if !slices.Contains(validStatuses, e.Status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, e.Status)
	}
	if e.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if e.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	return validateLocation(e.Location)
}

func applyEventUpdate(e *domain.Event, input domain.UpdateEventInput) {
	if input.Title != nil {
		e.Title = *input.Title
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.Category != nil {
		e.Category = *input.Category
	}
	if input.Date != nil {
		e.Date = *input.Date
	}
	if input.Time != nil {
		e.Time = *input.Time
	}
	if input.Location != nil {
		e.Location = *input.Location
	}
	if input.Image != nil {
		e.Image = *input.Image
	}
	if input.Capacity != nil {
		e.Capacity = *input.Capacity
	}
	if input.Price != nil {
		e.Price = *input.Price
		e.IsFree = e.Price == 0
	}
	if input.Tags != nil {
		e.Tags = input.Tags
	}
	if input.Status != nil {
		e.Status = *input.Status
	}
	if input.Featured != nil {
		e.Featured = *input.Featured
	}
	if input.Contact != nil {
		e.Contact = *input.Contact
	}
}
