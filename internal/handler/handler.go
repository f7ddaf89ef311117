package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/Vipul-2220/EventMate/internal/handler/dto"
	"github.com/Vipul-2220/EventMate/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type RegistrationSvc interface {
	Register(ctx context.Context, eventID, userID string) (*domain.Event, error)
	Unregister(ctx context.Context, eventID, userID string) (*domain.Event, error)
}

type EventSvc interface {
	CreateEvent(ctx context.Context, organizerID string, input domain.CreateEventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, eventID, actorID string, actorRole domain.Role, input domain.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID, actorID string, actorRole domain.Role) error
}

type QuerySvc interface {
	EventWithRoster(ctx context.Context, eventID string) (*domain.EventDetails, error)
	RegisteredEvents(ctx context.Context, userID string) ([]*domain.Event, error)
	OrganizedEvents(ctx context.Context, userID string) ([]*domain.Event, error)
	Search(ctx context.Context, f domain.EventFilter) (*domain.EventPage, error)
}

type UserSvc interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, targetID, actorID string, actorRole domain.Role, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, targetID string, actorRole domain.Role) error
}

type Handler struct {
	registrationService RegistrationSvc
	eventService        EventSvc
	queryService        QuerySvc
	userService         UserSvc
}

func NewHandler(
	registrationService RegistrationSvc,
	eventService EventSvc,
	queryService QuerySvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		registrationService: registrationService,
		eventService:        eventService,
		queryService:        queryService,
		userService:         userService,
	}
}

// Auth

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "validation"})
		return
	}

	user, token, err := h.userService.Signup(c.Request.Context(), domain.SignupInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: dto.ToUserResponse(user), Token: token})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "validation"})
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.ToUserResponse(user), Token: token})
}

func (h *Handler) Me(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		Status:    domain.EventStatus(c.Query("status")),
		Category:  domain.EventCategory(c.Query("category")),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))

	page, err := h.queryService.Search(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventPageResponse(page))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id", Reason: "validation"})
		return
	}

	details, err := h.queryService.EventWithRoster(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "validation"})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "invalid date format, expected RFC3339",
			Reason: "validation",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.EventCategory(req.Category),
		Date:        date,
		Time:        req.Time,
		Location: domain.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			ZipCode: req.Location.ZipCode,
		},
		Image:    req.Image,
		Capacity: req.Capacity,
		Price:    req.Price,
		Tags:     req.Tags,
		Featured: req.Featured,
	}
	if req.Contact != nil {
		input.Contact = domain.ContactInfo{
			Email:   req.Contact.Email,
			Phone:   req.Contact.Phone,
			Website: req.Contact.Website,
		}
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id", Reason: "validation"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "validation"})
		return
	}

	input, err := toUpdateEventInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "validation"})
		return
	}

	event, err := h.eventService.UpdateEvent(
		c.Request.Context(), id,
		middleware.UserID(c), middleware.UserRole(c),
		input,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id", Reason: "validation"})
		return
	}

	err := h.eventService.DeleteEvent(c.Request.Context(), id, middleware.UserID(c), middleware.UserRole(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Registrations

func (h *Handler) Register(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id", Reason: "validation"})
		return
	}

	event, err := h.registrationService.Register(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"message": "successfully registered for event",
		"event":   dto.ToEventResponse(event),
	})
}

func (h *Handler) Unregister(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id", Reason: "validation"})
		return
	}

	event, err := h.registrationService.Unregister(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"message": "successfully unregistered from event",
		"event":   dto.ToEventResponse(event),
	})
}

func (h *Handler) MyRegisteredEvents(c *ginext.Context) {
	events, err := h.queryService.RegisteredEvents(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) MyCreatedEvents(c *ginext.Context) {
	events, err := h.queryService.OrganizedEvents(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

// Users

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id", Reason: "validation"})
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id", Reason: "validation"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "validation"})
		return
	}

	input := domain.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		IsVerified: req.IsVerified,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.Update(
		c.Request.Context(), id,
		middleware.UserID(c), middleware.UserRole(c),
		input,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id", Reason: "validation"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id, middleware.UserRole(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func toUpdateEventInput(req dto.UpdateEventRequest) (domain.UpdateEventInput, error) {
	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
		Image:       req.Image,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Tags:        req.Tags,
		Featured:    req.Featured,
	}

	if req.Category != nil {
		cat := domain.EventCategory(*req.Category)
		input.Category = &cat
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		input.Status = &status
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return input, errors.New("invalid date format, expected RFC3339")
		}
		input.Date = &date
	}
	if req.Location != nil {
		input.Location = &domain.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			ZipCode: req.Location.ZipCode,
		}
	}
	if req.Contact != nil {
		input.Contact = &domain.ContactInfo{
			Email:   req.Contact.Email,
			Phone:   req.Contact.Phone,
			Website: req.Contact.Website,
		}
	}

	return input, nil
}

// handleError maps domain errors to HTTP codes with a stable machine
// readable reason alongside the human message.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Reason: "event_not_found"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Reason: "user_not_found"})

	case errors.Is(err, domain.ErrEventNotOpen):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "not_open"})
	case errors.Is(err, domain.ErrEventFull):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "full"})
	case errors.Is(err, domain.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "already_registered"})
	case errors.Is(err, domain.ErrNotRegistered):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "not_registered"})
	case errors.Is(err, domain.ErrCapacityBelowAttendance):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "capacity_below_attendance"})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "validation"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "email_taken"})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error(), Reason: "invalid_credentials"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error(), Reason: "forbidden"})

	case errors.Is(err, domain.ErrTransientStore):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:  "temporary storage conflict, please retry",
			Reason: "transient",
		})
	case errors.Is(err, domain.ErrInvariantViolation):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:  err.Error(),
			Reason: "invariant_violation",
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:  "internal server error",
			Reason: "internal",
		})
	}
}
