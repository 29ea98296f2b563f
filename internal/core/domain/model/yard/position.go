package yard

import (
	"errors"
	"time"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

// ErrPositionIsNotConstructed is returned when a Position instance was not
// created through the NewPosition factory method.
var ErrPositionIsNotConstructed = errors.New("Position must be created via NewPosition constructor")

// Position is the occupancy record binding a container to a coordinate.
// Exactly one Position exists per occupied coordinate; coordinates without a
// record are vacant. A Position is created when a placement completes and
// removed when the container leaves the yard.
//
// Position follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference a valid coordinate and container
//   - Can only be created through NewPosition or RestorePosition
type Position struct {
	// id is the unique identifier for the occupancy record
	id kernel.UUID

	// coordinate is the yard slot the container occupies
	coordinate kernel.Coordinate

	// containerID references the occupying container
	containerID kernel.UUID

	// autoAssigned marks whether the coordinate was chosen by the
	// suggestion engine rather than picked manually
	autoAssigned bool

	// createdAt is when the binding was established
	createdAt time.Time

	// guard ensures the position was created via a constructor
	guard guard.ConstructorGuard
}

// NewPosition creates a new occupancy record for the given container and
// coordinate. The creation timestamp is taken from the wall clock in UTC.
//
// Parameters:
//   - id: Unique identifier for the record (must be valid UUID)
//   - coordinate: The yard slot being bound (must be valid)
//   - containerID: The occupying container (must be valid UUID)
//   - autoAssigned: Whether the coordinate came from the suggestion engine
func NewPosition(
	id kernel.UUID,
	coordinate kernel.Coordinate,
	containerID kernel.UUID,
	autoAssigned bool,
) (*Position, error) {
	position := &Position{
		autoAssigned: autoAssigned,
		createdAt:    time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		position.setID(id),
		position.setCoordinate(coordinate),
		position.setContainerID(containerID),
	); err != nil {
		return nil, err
	}

	return position, nil
}

// RestorePosition reconstructs an occupancy record from persistent storage,
// preserving its original creation timestamp.
func RestorePosition(
	id kernel.UUID,
	coordinate kernel.Coordinate,
	containerID kernel.UUID,
	autoAssigned bool,
	createdAt time.Time,
) (*Position, error) {
	position, err := NewPosition(id, coordinate, containerID, autoAssigned)
	if err != nil {
		return nil, err
	}

	position.createdAt = createdAt
	return position, nil
}

// Validate ensures the Position instance was properly constructed.
func (p *Position) Validate() error {
	if p == nil {
		return ErrPositionIsNotConstructed
	}
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

// IsEqual compares two positions by their unique identifiers.
func (p *Position) IsEqual(other *Position) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (p *Position) ID() kernel.UUID {
	return p.id
}

// Coordinate returns the occupied yard slot.
func (p *Position) Coordinate() kernel.Coordinate {
	return p.coordinate
}

// ContainerID returns the occupying container's identifier.
func (p *Position) ContainerID() kernel.UUID {
	return p.containerID
}

// AutoAssigned reports whether the coordinate was chosen automatically.
func (p *Position) AutoAssigned() bool {
	return p.autoAssigned
}

// CreatedAt returns when the binding was established.
func (p *Position) CreatedAt() time.Time {
	return p.createdAt
}

// Relocate moves the record to a new coordinate. Used by the move operation;
// occupancy bookkeeping itself is the Grid's responsibility.
func (p *Position) Relocate(coordinate kernel.Coordinate) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.setCoordinate(coordinate)
}

func (p *Position) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Position) setCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}
	p.coordinate = coordinate
	return nil
}

func (p *Position) setContainerID(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}
	p.containerID = containerID
	return nil
}
