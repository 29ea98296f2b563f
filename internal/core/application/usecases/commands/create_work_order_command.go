package commands

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/workorder"
	"yard/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand represents a request to register a placement task
// for a container. The target coordinate is optional: when omitted, the
// suggestion engine picks one. A vehicle may be requested up front, turning
// the fresh order into an assigned one in a single step.
//
// Example:
//
//	cmd, err := NewCreateWorkOrderCommand(kernel.NewUUID(), containerID, nil, workorder.High, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory, grid)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create work order: %w", err)
//	}
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	containerID kernel.UUID
	coordinate  *kernel.Coordinate
	priority    workorder.Priority
	vehicleID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to register a placement task.
// The coordinate and vehicle are optional; everything present is validated.
func NewCreateWorkOrderCommand(
	orderID kernel.UUID,
	containerID kernel.UUID,
	coordinate *kernel.Coordinate,
	priority workorder.Priority,
	vehicleID *kernel.UUID,
) (CreateWorkOrderCommand, error) {
	command := CreateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setContainerID(containerID),
		command.setCoordinate(coordinate),
		command.setPriority(priority),
		command.setVehicleID(vehicleID),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWorkOrderCommandIsNotConstructed if validation fails.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new work order.
func (c CreateWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ContainerID returns the container the task will place.
func (c CreateWorkOrderCommand) ContainerID() kernel.UUID {
	return c.containerID
}

// Coordinate returns the requested target slot, or nil to let the
// suggestion engine choose.
func (c CreateWorkOrderCommand) Coordinate() *kernel.Coordinate {
	return c.coordinate
}

// Priority returns the urgency class of the task.
func (c CreateWorkOrderCommand) Priority() workorder.Priority {
	return c.priority
}

// VehicleID returns the requested vehicle, or nil to leave the order pending.
func (c CreateWorkOrderCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

func (c *CreateWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateWorkOrderCommand) setContainerID(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	c.containerID = containerID
	return nil
}

func (c *CreateWorkOrderCommand) setCoordinate(coordinate *kernel.Coordinate) error {
	if coordinate == nil {
		return nil
	}

	if err := coordinate.Validate(); err != nil {
		return err
	}

	c.coordinate = coordinate
	return nil
}

func (c *CreateWorkOrderCommand) setPriority(priority workorder.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateWorkOrderCommand) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID == nil {
		return nil
	}

	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
