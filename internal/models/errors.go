package models

import "fmt"

// Domain error taxonomy. Every command surfaces exactly one of these (or an
// infrastructure error) synchronously; none are retried internally.

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// InvalidStateTransitionError carries the current status and the attempted
// command so the caller can render a precise message.
type InvalidStateTransitionError struct {
	Command       string
	CurrentStatus InterviewStatus
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Command == "book-slot" {
		return fmt.Sprintf("Interview is not awaiting confirmation (current status: %s)", e.CurrentStatus)
	}
	return fmt.Sprintf("command %s is not allowed in status %s", e.Command, e.CurrentStatus)
}

type SlotUnavailableError struct {
	SlotID string
}

func (e *SlotUnavailableError) Error() string {
	return "Slot is no longer available"
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ConflictError is returned to the loser of two racing mutations on the same
// interview.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

type AccessDeniedError struct {
	Reason string
}

func (e *AccessDeniedError) Error() string {
	if e.Reason == "" {
		return "Access denied"
	}
	return e.Reason
}
