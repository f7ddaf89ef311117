package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/Vipul-2220/EventMate/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRegistrationService_Register_Success(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, userRepo, notifier, log)

	user := &domain.User{ID: "u1", Name: "alice"}
	event := &domain.Event{ID: "e1", Title: "GopherCon", Capacity: 100, Status: domain.EventStatusPublished}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	regRepo.EXPECT().Add(mock.Anything, "e1", "u1").Return(nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyRegistered(mock.Anything, user, event).Return()

	got, err := svc.Register(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Register_UserNotFound(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Register(context.Background(), "e1", "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegistrationService_Register_PreconditionFailures(t *testing.T) {
	cases := []struct {
		name    string
		repoErr error
	}{
		{"event not found", domain.ErrEventNotFound},
		{"event not open", domain.ErrEventNotOpen},
		{"event full", domain.ErrEventFull},
		{"already registered", domain.ErrAlreadyRegistered},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			regRepo := mocks.NewMockRegistrationRepo(t)
			eventRepo := mocks.NewMockEventRepo(t)
			userRepo := mocks.NewMockUserRepo(t)
			notifier := mocks.NewMockNotifier(t)
			log := newTestLogger(t)

			svc := NewRegistrationService(regRepo, eventRepo, userRepo, notifier, log)

			userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
			regRepo.EXPECT().Add(mock.Anything, "e1", "u1").Return(tc.repoErr).Once()

			_, err := svc.Register(context.Background(), "e1", "u1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.repoErr)
		})
	}
}

func TestRegistrationService_Register_RetriesTransientOnce(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, userRepo, notifier, log)

	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1", Capacity: 10, Status: domain.EventStatusPublished}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	regRepo.EXPECT().Add(mock.Anything, "e1", "u1").
		Return(fmt.Errorf("add registration: %w", domain.ErrTransientStore)).Once()
	regRepo.EXPECT().Add(mock.Anything, "e1", "u1").Return(nil).Once()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyRegistered(mock.Anything, user, event).Return()

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_TransientSurfacesAfterRetry(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	regRepo.EXPECT().Add(mock.Anything, "e1", "u1").
		Return(fmt.Errorf("add registration: %w", domain.ErrTransientStore)).Times(2)

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransientStore)
}

func TestRegistrationService_Unregister_Success(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, userRepo, notifier, log)

	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1", Capacity: 10, Status: domain.EventStatusPublished}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	regRepo.EXPECT().Remove(mock.Anything, "e1", "u1").Return(nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyUnregistered(mock.Anything, user, event).Return()

	got, err := svc.Unregister(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Unregister_NotRegistered(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	regRepo.EXPECT().Remove(mock.Anything, "e1", "u1").Return(domain.ErrNotRegistered)

	_, err := svc.Unregister(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}

// raceRegStore is an in-memory RegistrationRepo that performs the same
// check-then-write sequence as the SQL store, atomically per event.
type raceRegStore struct {
	mu        sync.Mutex
	status    domain.EventStatus
	capacity  int
	attendees map[string]struct{}
}

func newRaceRegStore(status domain.EventStatus, capacity int) *raceRegStore {
	return &raceRegStore{
		status:    status,
		capacity:  capacity,
		attendees: make(map[string]struct{}),
	}
}

func (f *raceRegStore) Add(_ context.Context, _, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != domain.EventStatusPublished {
		return domain.ErrEventNotOpen
	}
	if len(f.attendees) >= f.capacity {
		return domain.ErrEventFull
	}
	if _, ok := f.attendees[userID]; ok {
		return domain.ErrAlreadyRegistered
	}
	f.attendees[userID] = struct{}{}
	return nil
}

func (f *raceRegStore) Remove(_ context.Context, _, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.attendees[userID]; !ok {
		return domain.ErrNotRegistered
	}
	delete(f.attendees, userID)
	return nil
}

func (f *raceRegStore) ListByEvent(_ context.Context, _ string) ([]domain.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.UserSummary, 0, len(f.attendees))
	for id := range f.attendees {
		out = append(out, domain.UserSummary{ID: id})
	}
	return out, nil
}

func (f *raceRegStore) CountByEvent(_ context.Context, _ string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.attendees), nil
}

func TestRegistrationService_Register_LastSpotRace(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	store := newRaceRegStore(domain.EventStatusPublished, 1)
	svc := NewRegistrationService(store, eventRepo, userRepo, notifier, log)

	event := &domain.Event{ID: "e1", Capacity: 1, Status: domain.EventStatusPublished}
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		})
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil).Maybe()
	notifier.EXPECT().NotifyRegistered(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	users := []string{"u1", "u2"}
	errs := make([]error, len(users))

	var wg sync.WaitGroup
	for i, id := range users {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), "e1", id)
		}(i, id)
	}
	wg.Wait()

	var winners, full int
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, domain.ErrEventFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, full)

	count, _ := store.CountByEvent(context.Background(), "e1")
	assert.Equal(t, 1, count)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_SamePairRace(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	store := newRaceRegStore(domain.EventStatusPublished, 10)
	svc := NewRegistrationService(store, eventRepo, userRepo, notifier, log)

	event := &domain.Event{ID: "e1", Capacity: 10, Status: domain.EventStatusPublished}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil).Maybe()
	notifier.EXPECT().NotifyRegistered(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), "e1", "u1")
		}(i)
	}
	wg.Wait()

	var winners, dupes int
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, domain.ErrAlreadyRegistered):
			dupes++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, dupes)

	count, _ := store.CountByEvent(context.Background(), "e1")
	assert.Equal(t, 1, count)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_DraftEventClosed(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	store := newRaceRegStore(domain.EventStatusDraft, 10)
	svc := NewRegistrationService(store, eventRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotOpen)

	count, _ := store.CountByEvent(context.Background(), "e1")
	assert.Equal(t, 0, count)
}

func TestRegistrationService_RegisterUnregisterRoundTrip(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	store := newRaceRegStore(domain.EventStatusPublished, 5)
	svc := NewRegistrationService(store, eventRepo, userRepo, notifier, log)

	event := &domain.Event{ID: "e1", Capacity: 5, Status: domain.EventStatusPublished}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyRegistered(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyUnregistered(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	_, err := svc.Register(context.Background(), "e1", "u1")
	require.NoError(t, err)

	count, _ := store.CountByEvent(context.Background(), "e1")
	assert.Equal(t, 1, count)

	_, err = svc.Unregister(context.Background(), "e1", "u1")
	require.NoError(t, err)

	count, _ = store.CountByEvent(context.Background(), "e1")
	assert.Equal(t, 0, count)

	// removing again is an error, not a no-op
	_, err = svc.Unregister(context.Background(), "e1", "u1")
	assert.ErrorIs(t, err, domain.ErrNotRegistered)

	time.Sleep(50 * time.Millisecond)
}
