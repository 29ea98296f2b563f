package yard

import "errors"

// Occupancy errors. These are the stable failure kinds callers branch on;
// each implies a different corrective action.
var (
	// ErrPositionOccupied is returned when a coordinate is already bound to a
	// container. Recoverable by choosing another coordinate.
	ErrPositionOccupied = errors.New("position is occupied")

	// ErrPositionNotFound is returned when unbinding or moving a coordinate
	// that holds no container.
	ErrPositionNotFound = errors.New("position not found")

	// ErrContainerAlreadyPlaced is returned when binding a container that
	// already has an occupancy record elsewhere in the yard.
	ErrContainerAlreadyPlaced = errors.New("container is already placed")

	// ErrPositionSupportsOthers is returned when unbinding a coordinate that
	// carries another container directly above it. Removing it would leave
	// the stack unsupported.
	ErrPositionSupportsOthers = errors.New("position supports another container")
)
