package commands

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrAssignPositionCommandIsNotConstructed = errors.New(
	"AssignPositionCommand must be created via NewAssignPositionCommand constructor",
)

// AssignPositionCommand represents a request to bind a container to a yard
// coordinate directly, bypassing the work order flow. Used for the manual
// placement path and for confirming suggested placements.
//
// Example:
//
//	coordinate, _ := kernel.ParseCoordinate("A-03-12-1-A")
//	cmd, err := NewAssignPositionCommand(kernel.NewUUID(), containerID, coordinate, false)
//	if err != nil {
//	    return fmt.Errorf("invalid placement data: %w", err)
//	}
//
//	handler := NewAssignPositionCommandHandler(uowFactory, grid)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place container: %w", err)
//	}
type AssignPositionCommand struct { //nolint:recvcheck //using for validation
	positionID   kernel.UUID
	containerID  kernel.UUID
	coordinate   kernel.Coordinate
	autoAssigned bool

	guard guard.ConstructorGuard
}

// NewAssignPositionCommand creates a command to bind a container to a coordinate.
// Validates that both identifiers and the coordinate are properly constructed.
func NewAssignPositionCommand(
	positionID kernel.UUID,
	containerID kernel.UUID,
	coordinate kernel.Coordinate,
	autoAssigned bool,
) (AssignPositionCommand, error) {
	command := AssignPositionCommand{
		autoAssigned: autoAssigned,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPositionID(positionID),
		command.setContainerID(containerID),
		command.setCoordinate(coordinate),
	); err != nil {
		return AssignPositionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPositionCommandIsNotConstructed if validation fails.
func (c AssignPositionCommand) Validate() error {
	return c.guard.Validate(ErrAssignPositionCommandIsNotConstructed)
}

// PositionID returns the identifier for the new occupancy record.
func (c AssignPositionCommand) PositionID() kernel.UUID {
	return c.positionID
}

// ContainerID returns the container being placed.
func (c AssignPositionCommand) ContainerID() kernel.UUID {
	return c.containerID
}

// Coordinate returns the target yard slot.
func (c AssignPositionCommand) Coordinate() kernel.Coordinate {
	return c.coordinate
}

// AutoAssigned reports whether the coordinate came from the suggestion engine.
func (c AssignPositionCommand) AutoAssigned() bool {
	return c.autoAssigned
}

func (c *AssignPositionCommand) setPositionID(positionID kernel.UUID) error {
	if err := positionID.Validate(); err != nil {
		return err
	}

	c.positionID = positionID
	return nil
}

func (c *AssignPositionCommand) setContainerID(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	c.containerID = containerID
	return nil
}

func (c *AssignPositionCommand) setCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}

	c.coordinate = coordinate
	return nil
}
