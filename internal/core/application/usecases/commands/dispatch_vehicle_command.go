package commands

import (
	"errors"

	"yard/internal/pkg/guard"
)

var ErrDispatchVehicleCommandIsNotConstructed = errors.New(
	"DispatchVehicleCommand must be created via NewDispatchVehicleCommand constructor",
)

// DispatchVehicleCommand represents a request to attach a vehicle to the
// next pending work order automatically. This is a parameterless command:
// the handler picks both the order (highest priority, oldest first) and the
// vehicle (least loaded active one).
type DispatchVehicleCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchVehicleCommand creates a command for automatic vehicle dispatch.
func NewDispatchVehicleCommand() DispatchVehicleCommand {
	return DispatchVehicleCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchVehicleCommandIsNotConstructed if validation fails.
func (c DispatchVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDispatchVehicleCommandIsNotConstructed)
}
