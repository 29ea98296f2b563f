package commands

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrCancelWorkOrderCommandIsNotConstructed = errors.New(
	"CancelWorkOrderCommand must be created via NewCancelWorkOrderCommand constructor",
)

// CancelWorkOrderCommand represents withdrawal of a placement task before
// completion, e.g. because the container entry was withdrawn by an external
// collaborator. Cancellation never touches occupancy.
type CancelWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelWorkOrderCommand creates a command to cancel a work order.
func NewCancelWorkOrderCommand(orderID kernel.UUID) (CancelWorkOrderCommand, error) {
	command := CancelWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CancelWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelWorkOrderCommandIsNotConstructed if validation fails.
func (c CancelWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelWorkOrderCommandIsNotConstructed)
}

// OrderID returns the work order being cancelled.
func (c CancelWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
