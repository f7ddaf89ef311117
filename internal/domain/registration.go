package domain

import "time"

// Registration is one row of the event↔user relation. The event's
// attendee set and the user's registered-event set are both projections
// of this relation, so the two sides cannot drift apart.
type Registration struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
