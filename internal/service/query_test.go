package service

import (
	"context"
	"testing"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/Vipul-2220/EventMate/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQueryService(t *testing.T) (*QueryService, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockRegistrationRepo) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewQueryService(eventRepo, userRepo, regRepo, newTestLogger(t))
	return svc, eventRepo, userRepo, regRepo
}

func TestQueryService_EventWithRoster_Success(t *testing.T) {
	svc, eventRepo, userRepo, regRepo := newQueryService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org1", Title: "GopherCon", Capacity: 100}
	organizer := &domain.User{ID: "org1", Name: "Olga", Email: "olga@example.com"}
	attendees := []domain.UserSummary{
		{ID: "u1", Name: "alice"},
		{ID: "u2", Name: "bob"},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(attendees, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(organizer, nil)

	details, err := svc.EventWithRoster(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", details.Event.ID)
	assert.Equal(t, "org1", details.Organizer.ID)
	assert.Equal(t, 98, details.RemainingCapacity)
	assert.Len(t, details.Attendees, 2)
}

func TestQueryService_EventWithRoster_FullEventZeroRemaining(t *testing.T) {
	svc, eventRepo, userRepo, regRepo := newQueryService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org1", Capacity: 2}
	attendees := []domain.UserSummary{{ID: "u1"}, {ID: "u2"}}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(attendees, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(&domain.User{ID: "org1"}, nil)

	details, err := svc.EventWithRoster(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 0, details.RemainingCapacity)
}

func TestQueryService_EventWithRoster_InvariantViolation(t *testing.T) {
	svc, eventRepo, _, regRepo := newQueryService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org1", Capacity: 1}
	attendees := []domain.UserSummary{{ID: "u1"}, {ID: "u2"}}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(attendees, nil)

	_, err := svc.EventWithRoster(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}

func TestQueryService_EventWithRoster_EventNotFound(t *testing.T) {
	svc, eventRepo, _, _ := newQueryService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.EventWithRoster(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestQueryService_RegisteredEvents_UserNotFound(t *testing.T) {
	svc, _, userRepo, _ := newQueryService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.RegisteredEvents(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestQueryService_OrganizedEvents_Success(t *testing.T) {
	svc, eventRepo, userRepo, _ := newQueryService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().ListByOrganizer(mock.Anything, "u1").
		Return([]*domain.Event{{ID: "e1"}}, nil)

	events, err := svc.OrganizedEvents(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestQueryService_Search_Defaults(t *testing.T) {
	svc, eventRepo, _, _ := newQueryService(t)

	want := domain.EventFilter{
		Status:    domain.EventStatusPublished,
		SortBy:    "date",
		SortOrder: "asc",
		Page:      1,
		Limit:     10,
	}
	eventRepo.EXPECT().List(mock.Anything, want).Return([]*domain.Event{}, nil)
	eventRepo.EXPECT().Count(mock.Anything, want).Return(0, nil)

	page, err := svc.Search(context.Background(), domain.EventFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 0, page.TotalPages)
}

func TestQueryService_Search_CapsLimit(t *testing.T) {
	svc, eventRepo, _, _ := newQueryService(t)

	eventRepo.EXPECT().List(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, f domain.EventFilter) ([]*domain.Event, error) {
			assert.Equal(t, 100, f.Limit)
			return []*domain.Event{}, nil
		})
	eventRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(0, nil)

	_, err := svc.Search(context.Background(), domain.EventFilter{Limit: 5000})

	require.NoError(t, err)
}

func TestQueryService_Search_Pagination(t *testing.T) {
	svc, eventRepo, _, _ := newQueryService(t)

	events := make([]*domain.Event, 10)
	for i := range events {
		events[i] = &domain.Event{ID: "e"}
	}
	eventRepo.EXPECT().List(mock.Anything, mock.Anything).Return(events, nil)
	eventRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(25, nil)

	page, err := svc.Search(context.Background(), domain.EventFilter{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
}
