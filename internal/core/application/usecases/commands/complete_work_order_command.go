package commands

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrCompleteWorkOrderCommandIsNotConstructed = errors.New(
	"CompleteWorkOrderCommand must be created via NewCompleteWorkOrderCommand constructor",
)

// CompleteWorkOrderCommand represents confirmation that the physical move of
// a work order has been carried out. Completion is the only point at which a
// work order mutates occupancy.
type CompleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteWorkOrderCommand creates a command to complete a work order.
func NewCompleteWorkOrderCommand(orderID kernel.UUID) (CompleteWorkOrderCommand, error) {
	command := CompleteWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CompleteWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteWorkOrderCommandIsNotConstructed if validation fails.
func (c CompleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteWorkOrderCommandIsNotConstructed)
}

// OrderID returns the work order being completed.
func (c CompleteWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
