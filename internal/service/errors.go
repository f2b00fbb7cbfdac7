package service

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when the caller is not authenticated
	ErrUnauthorized = errors.New("unauthorized")
)

// Entity specific errors. Each wraps one of the common errors so handlers can
// map them with errors.Is.
var (
	ErrLeadNotFound           = fmt.Errorf("lead %w", ErrNotFound)
	ErrLeadActivityNotFound   = fmt.Errorf("lead activity %w", ErrNotFound)
	ErrGeneralExpenseNotFound = fmt.Errorf("general expense %w", ErrNotFound)
	ErrCalendarEventNotFound  = fmt.Errorf("calendar event %w", ErrNotFound)

	ErrInvalidStage        = fmt.Errorf("%w: stage is not a known pipeline stage", ErrInvalidInput)
	ErrInvalidActivityType = fmt.Errorf("%w: unknown activity type", ErrInvalidInput)
	ErrInvalidEventType    = fmt.Errorf("%w: unknown calendar event type", ErrInvalidInput)
	ErrNegativeAmount      = fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	ErrInvalidDateRange    = fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	ErrUnknownLead         = fmt.Errorf("%w: referenced lead does not exist", ErrInvalidInput)
	ErrInvalidFormat       = fmt.Errorf("%w: export format must be csv or xlsx", ErrInvalidInput)
)
