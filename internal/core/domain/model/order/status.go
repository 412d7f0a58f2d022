package order

import (
	"fmt"

	"appcenar/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with monotonic transitions:
//
//	Pending ──> InProgress ──> Completed
//
// There is no cancellation or rejection state, no reassignment, and no
// transition back to an earlier state. Status is a value object that
// validates transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status set at order creation.
	// Pending orders are waiting for a courier assignment.
	Pending

	// InProgress indicates a courier has been assigned and is delivering.
	InProgress

	// Completed indicates the order has been delivered.
	// This is a terminal state with no further transitions.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is one of Pending, InProgress, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks if a courier may be assigned from the current
// status without performing the transition. Only Pending orders are
// assignable; assigning an InProgress order signals "already assigned"
// rather than performing a reassignment.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates consistency between status and courier
// assignment: a courier reference is present exactly when the order is
// InProgress or Completed.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == InProgress || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress
//
// Returns (0, error) for any other starting status.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Completing an already-completed order is an error, never a silent
// success.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
