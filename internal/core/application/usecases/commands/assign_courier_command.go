package commands

import (
	"errors"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to assign an available courier
// to a pending order. It targets either a specific order (the merchant
// pressing "assign") or, with no order ID, the oldest pending order (the
// dispatch loop).
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command targeting a specific order.
func NewAssignCourierCommand(orderID kernel.UUID) (AssignCourierCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewAssignOldestPendingCommand creates a command targeting the pending
// order that has been waiting longest.
func NewAssignOldestPendingCommand() AssignCourierCommand {
	return AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through a constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the targeted order, or nil for the oldest pending one.
func (c AssignCourierCommand) OrderID() *kernel.UUID {
	return c.orderID
}
