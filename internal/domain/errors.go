package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound is returned when the submitted card number is unknown.
	ErrAccountNotFound = errors.New("account not found")
	// ErrSecretMismatch is returned when the card number exists but the secret is wrong.
	ErrSecretMismatch = errors.New("incorrect secret")
	// ErrInstrumentMismatch indicates a card used against the wrong questionnaire.
	// Raised by the transport-level affinity policy, not by the eligibility engine.
	ErrInstrumentMismatch = errors.New("account is restricted to a different assessment")
	// ErrUnknownInstrument indicates a request named neither questionnaire.
	ErrUnknownInstrument = errors.New("unknown instrument")
)

// AccountLockedError is returned when a valid non-admin credential is reused
// inside its cooldown window.
type AccountLockedError struct {
	HoursLeft int
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked, time remaining approximately %d hours", e.HoursLeft)
}
