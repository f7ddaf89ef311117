package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

// Registration preconditions. These reflect real-world state, not faults,
// and are never retried internally.
var (
	ErrEventNotOpen      = errors.New("event is not open for registration")
	ErrEventFull         = errors.New("event is full")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrNotRegistered     = errors.New("not registered for this event")
)

var (
	ErrValidation              = errors.New("validation error")
	ErrEmailTaken              = errors.New("email is already taken")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrForbidden               = errors.New("not authorized")
	ErrCapacityBelowAttendance = errors.New("capacity cannot be lower than current attendee count")
)

// ErrTransientStore marks storage conflicts the caller may retry with
// backoff.
var ErrTransientStore = errors.New("transient storage conflict")

// ErrInvariantViolation should be unreachable: a read observed an attendee
// set larger than capacity. It is surfaced, never silently repaired.
var ErrInvariantViolation = errors.New("registration invariant violated")
