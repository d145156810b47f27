package order

import (
	"fmt"

	"sendit/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
//
// The nominal flow is
//
//	pending -> picked_up -> in_transit -> out_for_delivery -> delivered
//
// with cancelled reachable from any non-terminal state. Delivered and
// cancelled are terminal for the explicit guards (cancellation and destination
// changes); administrative status updates go through a TransitionPolicy, which
// is deliberately permissive by default so operators can correct mistakes.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// PickedUp indicates the parcel has been collected from the pickup location.
	PickedUp

	// InTransit indicates the parcel is moving between facilities.
	InTransit

	// OutForDelivery indicates the parcel is on its final leg.
	OutForDelivery

	// Delivered indicates the parcel reached its destination. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses a wire-format status name ("pending", "in_transit", ...).
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further lifecycle
// operations through the explicit guards.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionPolicy decides whether a direct status change from one state to
// another is allowed. It is the single choke point for administrative status
// updates: substituting a stricter policy changes the transition rules without
// touching any call site. The cancellation and destination-change guards are
// separate and not subject to the policy.
type TransitionPolicy func(from Status, to Status) error

// AllowAnyTransition permits every change to a valid status, including
// backward movement and leaving terminal states. This mirrors the historical
// behavior where administrators may set any status at any time.
func AllowAnyTransition(_ Status, to Status) error {
	return to.Validate()
}

// RejectTerminalTransition permits any change to a valid status except moving
// an order out of delivered or cancelled. A stricter drop-in alternative to
// AllowAnyTransition.
func RejectTerminalTransition(from Status, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if from.IsTerminal() {
		return errs.NewInvalidStateErrorWithCause("status cannot change",
			fmt.Errorf("%s is a terminal status", from))
	}
	return nil
}
