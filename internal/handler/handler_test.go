package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/Vipul-2220/EventMate/internal/handler/dto"
	hmocks "github.com/Vipul-2220/EventMate/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const (
	testUserID  = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	testAdminID = "a1b2c3d4-e5f6-40de-944b-e07fc1f90ae7"
)

type testMocks struct {
	reg   *hmocks.MockRegistrationSvc
	event *hmocks.MockEventSvc
	query *hmocks.MockQuerySvc
	user  *hmocks.MockUserSvc
}

func fakeAuth(userID string, role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set("auth_user_id", userID)
		c.Set("auth_user_role", role)
		c.Next()
	}
}

func setupRouter(t *testing.T, userID string, role domain.Role) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		reg:   hmocks.NewMockRegistrationSvc(t),
		event: hmocks.NewMockEventSvc(t),
		query: hmocks.NewMockQuerySvc(t),
		user:  hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.reg, m.event, m.query, m.user)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)

		api.GET("/events", h.ListEvents)
		api.GET("/events/user/registered", fakeAuth(userID, role), h.MyRegisteredEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", fakeAuth(userID, role), h.CreateEvent)
		api.PUT("/events/:id", fakeAuth(userID, role), h.UpdateEvent)
		api.DELETE("/events/:id", fakeAuth(userID, role), h.DeleteEvent)
		api.POST("/events/:id/register", fakeAuth(userID, role), h.Register)
		api.DELETE("/events/:id/register", fakeAuth(userID, role), h.Unregister)

		api.GET("/users/:id", fakeAuth(userID, role), h.GetUser)
		api.PUT("/users/:id", fakeAuth(userID, role), h.UpdateUser)
		api.DELETE("/users/:id", fakeAuth(userID, role), h.DeleteUser)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Signup_Success(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	user := &domain.User{ID: testUserID, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	m.user.EXPECT().Signup(mock.Anything, mock.Anything).Return(user, "token123", nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", dto.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token123", resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestHandler_Signup_BadRequest(t *testing.T) {
	_, r := setupRouter(t, testUserID, domain.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", map[string]string{"name": "Alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	m.user.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").
		Return(nil, "", domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_credentials", resp.Reason)
}

// --- Events ---

func TestHandler_ListEvents_QueryParams(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	m.query.EXPECT().Search(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, f domain.EventFilter) (*domain.EventPage, error) {
			assert.Equal(t, domain.EventStatus("published"), f.Status)
			assert.Equal(t, domain.EventCategory("Technology"), f.Category)
			assert.Equal(t, 2, f.Page)
			assert.Equal(t, 5, f.Limit)
			require.NotNil(t, f.Featured)
			assert.True(t, *f.Featured)
			return &domain.EventPage{Events: []*domain.Event{}, CurrentPage: 2, TotalPages: 1}, nil
		})

	w := doJSON(t, r, http.MethodGet,
		"/api/events?status=published&category=Technology&page=2&limit=5&featured=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event:             domain.Event{ID: eventID, Title: "GopherCon", Capacity: 100},
		Organizer:         domain.UserSummary{ID: "org1", Name: "Olga"},
		RemainingCapacity: 97,
		Attendees: []domain.UserSummary{
			{ID: "u1"}, {ID: "u2"}, {ID: "u3"},
		},
	}
	m.query.EXPECT().EventWithRoster(mock.Anything, eventID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GopherCon", resp.Event.Title)
	assert.Equal(t, 97, resp.RemainingCapacity)
	assert.Len(t, resp.Attendees, 3)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t, testUserID, domain.RoleUser)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	eventID := uuid.New().String()
	m.query.EXPECT().EventWithRoster(mock.Anything, eventID).
		Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "event_not_found", resp.Reason)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	event := &domain.Event{
		ID:          uuid.New().String(),
		OrganizerID: testUserID,
		Title:       "Go Meetup",
		Status:      domain.EventStatusDraft,
	}
	m.event.EXPECT().CreateEvent(mock.Anything, testUserID, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:       "Go Meetup",
		Description: "Monthly meetup",
		Category:    "Technology",
		Date:        time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Time:        "18:00",
		Location: dto.LocationRequest{
			Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701",
		},
		Capacity: 50,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Go Meetup", resp.Title)
	assert.Equal(t, "draft", resp.Status)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, testUserID, domain.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:       "Go Meetup",
		Description: "Monthly meetup",
		Category:    "Technology",
		Date:        "tomorrow",
		Time:        "18:00",
		Location: dto.LocationRequest{
			Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701",
		},
		Capacity: 50,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_Forbidden(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	eventID := uuid.New().String()
	m.event.EXPECT().
		UpdateEvent(mock.Anything, eventID, testUserID, domain.RoleUser, mock.Anything).
		Return(nil, domain.ErrForbidden)

	title := "Hijacked"
	w := doJSON(t, r, http.MethodPut, "/api/events/"+eventID, dto.UpdateEventRequest{Title: &title})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateEvent_CapacityBelowAttendance(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	eventID := uuid.New().String()
	m.event.EXPECT().
		UpdateEvent(mock.Anything, eventID, testUserID, domain.RoleUser, mock.Anything).
		Return(nil, domain.ErrCapacityBelowAttendance)

	capacity := 3
	w := doJSON(t, r, http.MethodPut, "/api/events/"+eventID, dto.UpdateEventRequest{Capacity: &capacity})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "capacity_below_attendance", resp.Reason)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	eventID := uuid.New().String()
	m.event.EXPECT().
		DeleteEvent(mock.Anything, eventID, testUserID, domain.RoleUser).
		Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Registrations ---

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	eventID := uuid.New().String()
	event := &domain.Event{ID: eventID, Title: "GopherCon", Capacity: 100}
	m.reg.EXPECT().Register(mock.Anything, eventID, testUserID).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%s/register", eventID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "successfully registered")
}

func TestHandler_Register_ConflictCodes(t *testing.T) {
	cases := []struct {
		name   string
		svcErr error
		code   int
		reason string
	}{
		{"event full", domain.ErrEventFull, http.StatusConflict, "full"},
		{"already registered", domain.ErrAlreadyRegistered, http.StatusConflict, "already_registered"},
		{"not open", domain.ErrEventNotOpen, http.StatusConflict, "not_open"},
		{"event missing", domain.ErrEventNotFound, http.StatusNotFound, "event_not_found"},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound, "user_not_found"},
		{"transient", domain.ErrTransientStore, http.StatusServiceUnavailable, "transient"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := setupRouter(t, testUserID, domain.RoleUser)

			eventID := uuid.New().String()
			m.reg.EXPECT().Register(mock.Anything, eventID, testUserID).
				Return(nil, fmt.Errorf("add attendee: %w", tc.svcErr))

			w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%s/register", eventID), nil)

			assert.Equal(t, tc.code, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.reason, resp.Reason)
		})
	}
}

func TestHandler_Unregister_NotRegistered(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	eventID := uuid.New().String()
	m.reg.EXPECT().Unregister(mock.Anything, eventID, testUserID).
		Return(nil, domain.ErrNotRegistered)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/events/%s/register", eventID), nil)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_registered", resp.Reason)
}

func TestHandler_MyRegisteredEvents(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	m.query.EXPECT().RegisteredEvents(mock.Anything, testUserID).
		Return([]*domain.Event{{ID: "e1"}, {ID: "e2"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/user/registered", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Users ---

func TestHandler_GetUser_Profile(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	userID := uuid.New().String()
	profile := &domain.Profile{
		User:       domain.User{ID: userID, Name: "Alice"},
		Organized:  []*domain.Event{{ID: "e1"}},
		Registered: []*domain.Event{},
	}
	m.user.EXPECT().GetProfile(mock.Anything, userID).Return(profile, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Len(t, resp.Organized, 1)
}

func TestHandler_DeleteUser_Forbidden(t *testing.T) {
	m, r := setupRouter(t, testUserID, domain.RoleUser)

	userID := uuid.New().String()
	m.user.EXPECT().Delete(mock.Anything, userID, domain.RoleUser).
		Return(domain.ErrForbidden)

	w := doJSON(t, r, http.MethodDelete, "/api/users/"+userID, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteUser_Admin(t *testing.T) {
	m, r := setupRouter(t, testAdminID, domain.RoleAdmin)

	userID := uuid.New().String()
	m.user.EXPECT().Delete(mock.Anything, userID, domain.RoleAdmin).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/users/"+userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
