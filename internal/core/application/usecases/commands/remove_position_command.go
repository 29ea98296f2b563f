package commands

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrRemovePositionCommandIsNotConstructed = errors.New(
	"RemovePositionCommand must be created via NewRemovePositionCommand constructor",
)

// RemovePositionCommand represents a request to release an occupancy record,
// freeing the coordinate when the container leaves the yard.
type RemovePositionCommand struct { //nolint:recvcheck //using for validation
	positionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemovePositionCommand creates a command to release an occupancy record.
func NewRemovePositionCommand(positionID kernel.UUID) (RemovePositionCommand, error) {
	command := RemovePositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPositionID(positionID); err != nil {
		return RemovePositionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemovePositionCommandIsNotConstructed if validation fails.
func (c RemovePositionCommand) Validate() error {
	return c.guard.Validate(ErrRemovePositionCommandIsNotConstructed)
}

// PositionID returns the occupancy record being released.
func (c RemovePositionCommand) PositionID() kernel.UUID {
	return c.positionID
}

func (c *RemovePositionCommand) setPositionID(positionID kernel.UUID) error {
	if err := positionID.Validate(); err != nil {
		return err
	}

	c.positionID = positionID
	return nil
}
