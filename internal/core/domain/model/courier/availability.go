package courier

import (
	"fmt"

	"appcenar/internal/pkg/errs"
)

// Availability represents whether a courier can take an order right now.
// It is a two-state value object:
//
//	Available <──> Busy
//
// A courier is Available when they have no order in progress and Busy
// while they are delivering one. Claim and Release drive the transitions.
type Availability int

const (
	// UnknownAvailability represents an invalid or undefined availability.
	// This value (0) helps catch uninitialized Availability values.
	UnknownAvailability Availability = iota

	// Available means the courier can be assigned an order.
	Available

	// Busy means the courier is delivering an order and cannot take another.
	Busy
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		UnknownAvailability: "Unknown",
		Available:           "Available",
		Busy:                "Busy",
	}
}

func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // UnknownAvailability is intentionally excluded as it's invalid
	return map[Availability]string{
		Available: "Available",
		Busy:      "Busy",
	}
}

// Validate checks if the Availability value is one of Available, Busy.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability is invalid",
			fmt.Errorf("%d is not a valid availability", a),
		)
	}
	return nil
}

// String returns the human-readable name of the availability.
// Invalid values render as "Unknown".
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
