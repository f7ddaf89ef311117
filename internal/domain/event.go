package domain

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

type EventCategory string

const (
	CategoryTechnology    EventCategory = "Technology"
	CategoryBusiness      EventCategory = "Business"
	CategoryEducation     EventCategory = "Education"
	CategoryEntertainment EventCategory = "Entertainment"
	CategorySports        EventCategory = "Sports"
	CategoryHealth        EventCategory = "Health"
	CategoryOther         EventCategory = "Other"
)

var Categories = []EventCategory{
	CategoryTechnology, CategoryBusiness, CategoryEducation,
	CategoryEntertainment, CategorySports, CategoryHealth, CategoryOther,
}

// Location is populated as a unit: either every field is set or the event
// fails validation.
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

type Event struct {
	ID          string        `json:"id"`
	OrganizerID string        `json:"organizer_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    EventCategory `json:"category"`
	Date        time.Time     `json:"date"`
	Time        string        `json:"time"`
	Location    Location      `json:"location"`
	Image       string        `json:"image,omitempty"`
	Capacity    int           `json:"capacity"`
	Price       float64       `json:"price"`
	IsFree      bool          `json:"is_free"`
	Tags        []string      `json:"tags,omitempty"`
	Status      EventStatus   `json:"status"`
	Featured    bool          `json:"featured"`
	Contact     ContactInfo   `json:"contact_info"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// RemainingCapacity is computed at read time and never persisted, so the
// stored record cannot drift from the attendee count.
func RemainingCapacity(capacity, attendeeCount int) int {
	return capacity - attendeeCount
}

func IsFull(capacity, attendeeCount int) bool {
	return attendeeCount >= capacity
}

// EventDetails is the display projection: the event with its resolved
// roster. Derived data, never a source of truth for capacity decisions.
type EventDetails struct {
	Event             Event         `json:"event"`
	Organizer         UserSummary   `json:"organizer"`
	RemainingCapacity int           `json:"remaining_capacity"`
	Attendees         []UserSummary `json:"attendees"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Category    EventCategory
	Date        time.Time
	Time        string
	Location    Location
	Image       string
	Capacity    int
	Price       float64
	Tags        []string
	Featured    bool
	Contact     ContactInfo
}

// UpdateEventInput carries metadata edits. Nil fields are left unchanged.
// Attendee membership is never edited through this path.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Category    *EventCategory
	Date        *time.Time
	Time        *string
	Location    *Location
	Image       *string
	Capacity    *int
	Price       *float64
	Tags        []string
	Status      *EventStatus
	Featured    *bool
	Contact     *ContactInfo
}

// EventFilter selects and orders events for list queries.
type EventFilter struct {
	Status    EventStatus
	Category  EventCategory
	Search    string
	Featured  *bool
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type EventPage struct {
	Events      []*Event `json:"events"`
	Total       int      `json:"total"`
	CurrentPage int      `json:"current_page"`
	TotalPages  int      `json:"total_pages"`
}
