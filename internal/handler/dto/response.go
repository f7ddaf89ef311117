package dto

import (
	"time"

	"github.com/Vipul-2220/EventMate/internal/domain"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	CreatedAt  string `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type EventResponse struct {
	ID          string             `json:"id"`
	OrganizerID string             `json:"organizer_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Location    domain.Location    `json:"location"`
	Image       string             `json:"image,omitempty"`
	Capacity    int                `json:"capacity"`
	Price       float64            `json:"price"`
	IsFree      bool               `json:"is_free"`
	Tags        []string           `json:"tags,omitempty"`
	Status      string             `json:"status"`
	Featured    bool               `json:"featured"`
	Contact     domain.ContactInfo `json:"contact_info"`
	CreatedAt   string             `json:"created_at"`
}

type EventDetailsResponse struct {
	Event             EventResponse        `json:"event"`
	Organizer         domain.UserSummary   `json:"organizer"`
	RemainingCapacity int                  `json:"remaining_capacity"`
	Attendees         []domain.UserSummary `json:"attendees"`
}

type EventPageResponse struct {
	Events      []EventResponse `json:"events"`
	Total       int             `json:"total"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
}

type ProfileResponse struct {
	User       UserResponse    `json:"user"`
	Organized  []EventResponse `json:"organized_events"`
	Registered []EventResponse `json:"registered_events"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		OrganizerID: e.OrganizerID,
		Title:       e.Title,
		Description: e.Description,
		Category:    string(e.Category),
		Date:        e.Date.Format(time.RFC3339),
		Time:        e.Time,
		Location:    e.Location,
		Image:       e.Image,
		Capacity:    e.Capacity,
		Price:       e.Price,
		IsFree:      e.IsFree,
		Tags:        e.Tags,
		Status:      string(e.Status),
		Featured:    e.Featured,
		Contact:     e.Contact,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	res := make([]EventResponse, 0, len(events))
	for _, e := range events {
		res = append(res, ToEventResponse(e))
	}
	return res
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	attendees := d.Attendees
	if attendees == nil {
		attendees = []domain.UserSummary{}
	}

	return EventDetailsResponse{
		Event:             ToEventResponse(&d.Event),
		Organizer:         d.Organizer,
		RemainingCapacity: d.RemainingCapacity,
		Attendees:         attendees,
	}
}

func ToEventPageResponse(p *domain.EventPage) EventPageResponse {
	return EventPageResponse{
		Events:      ToEventResponses(p.Events),
		Total:       p.Total,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
	}
}

func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		User:       ToUserResponse(&p.User),
		Organized:  ToEventResponses(p.Organized),
		Registered: ToEventResponses(p.Registered),
	}
}
