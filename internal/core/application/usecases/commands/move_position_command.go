package commands

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrMovePositionCommandIsNotConstructed = errors.New(
	"MovePositionCommand must be created via NewMovePositionCommand constructor",
)

// MovePositionCommand represents a request to relocate an existing occupancy
// record to a different coordinate. The move is atomic: unbind old, validate
// and bind new in a single step.
type MovePositionCommand struct { //nolint:recvcheck //using for validation
	positionID kernel.UUID
	coordinate kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewMovePositionCommand creates a command to relocate an occupancy record.
// Validates that the identifier and the target coordinate are properly constructed.
func NewMovePositionCommand(positionID kernel.UUID, coordinate kernel.Coordinate) (MovePositionCommand, error) {
	command := MovePositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPositionID(positionID),
		command.setCoordinate(coordinate),
	); err != nil {
		return MovePositionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMovePositionCommandIsNotConstructed if validation fails.
func (c MovePositionCommand) Validate() error {
	return c.guard.Validate(ErrMovePositionCommandIsNotConstructed)
}

// PositionID returns the occupancy record being relocated.
func (c MovePositionCommand) PositionID() kernel.UUID {
	return c.positionID
}

// Coordinate returns the new target yard slot.
func (c MovePositionCommand) Coordinate() kernel.Coordinate {
	return c.coordinate
}

func (c *MovePositionCommand) setPositionID(positionID kernel.UUID) error {
	if err := positionID.Validate(); err != nil {
		return err
	}

	c.positionID = positionID
	return nil
}

func (c *MovePositionCommand) setCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}

	c.coordinate = coordinate
	return nil
}
