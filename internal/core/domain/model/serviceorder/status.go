package serviceorder

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order.
// It implements a state machine with defined transitions so orders always
// follow the shop's workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> AwaitingPayment ──> Completed
//	   │             │                │
//	   └─────────────┴────────────────┴──────────> Canceled
//
// Completed and Canceled are terminal. Cancellation is allowed from any
// non-terminal state and pre-empts the forward path. A transition to the
// current status is never allowed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is registered.
	StatusPending

	// StatusInProgress indicates work on the order has started.
	StatusInProgress

	// StatusAwaitingPayment indicates work is done and payment is due.
	StatusAwaitingPayment

	// StatusCompleted indicates the order was paid and closed.
	// Terminal.
	StatusCompleted

	// StatusCanceled indicates the order was abandoned before completion.
	// Terminal.
	StatusCanceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusPending:         "PENDING",
		StatusInProgress:      "IN_PROGRESS",
		StatusAwaitingPayment: "AWAITING_PAYMENT",
		StatusCompleted:       "COMPLETED",
		StatusCanceled:        "CANCELED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:         "PENDING",
		StatusInProgress:      "IN_PROGRESS",
		StatusAwaitingPayment: "AWAITING_PAYMENT",
		StatusCompleted:       "COMPLETED",
		StatusCanceled:        "CANCELED",
	}
}

// StatusFromString converts a stored status tag back to a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stored tag of the status, or "Unknown" for invalid
// values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is legal from the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransitionTo reports whether the requested status change is legal.
//
// Rules, evaluated in order:
//  1. A transition to the current status is illegal.
//  2. Canceling a non-terminal order is always legal.
//  3. Pending orders may only be started.
//  4. In-progress orders may only move to awaiting payment.
//  5. Orders awaiting payment may only be completed.
//  6. Completed and canceled orders allow nothing.
func (s Status) CanTransitionTo(to Status) bool {
	if to == s {
		return false
	}
	if to == StatusCanceled {
		return !s.IsTerminal()
	}

	switch s {
	case StatusPending:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusAwaitingPayment
	case StatusAwaitingPayment:
		return to == StatusCompleted
	default:
		return false
	}
}

// TransitionTo returns the requested status if the transition is legal.
// An illegal request returns an InvalidTransitionError carrying the current
// and requested status names; no other state is touched.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return to, nil
}
