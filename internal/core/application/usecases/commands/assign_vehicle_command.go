package commands

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand represents a request to attach a specific vehicle to a
// pending or assigned work order.
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to attach a vehicle to a work order.
func NewAssignVehicleCommand(orderID kernel.UUID, vehicleID kernel.UUID) (AssignVehicleCommand, error) {
	command := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setVehicleID(vehicleID),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignVehicleCommandIsNotConstructed if validation fails.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// OrderID returns the work order receiving the vehicle.
func (c AssignVehicleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleID returns the vehicle being attached.
func (c AssignVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *AssignVehicleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
