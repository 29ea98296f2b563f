// Package vehicle models yard equipment (reach stackers, terminal tractors)
// as a reference entity. The placement core reads vehicle identity and
// activity state only; vehicle lifecycle is owned by an external collaborator.
package vehicle

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/errs"
	"yard/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrNameIsRequired is returned when attempting to create a vehicle without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle represents a piece of yard equipment that executes work orders.
// Only active vehicles may be attached to a work order; an inactive vehicle
// is out of service (maintenance, decommissioned) but keeps its identity so
// historical work orders remain resolvable.
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// name is the human-readable equipment designation, e.g. "RS-02"
	name string
	// active indicates whether the vehicle is currently in service
	active bool
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle with the specified parameters.
// New vehicles start active.
//
// Parameters:
//   - id: Unique identifier for the vehicle (must be valid UUID)
//   - name: Human-readable designation (must be non-empty)
func NewVehicle(id kernel.UUID, name string) (*Vehicle, error) {
	v := &Vehicle{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage,
// including its activity state.
func RestoreVehicle(id kernel.UUID, name string, active bool) (*Vehicle, error) {
	v, err := NewVehicle(id, name)
	if err != nil {
		return nil, err
	}

	v.active = active
	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed through NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Name returns the human-readable equipment designation.
func (v *Vehicle) Name() string {
	return v.name
}

// IsActive reports whether the vehicle is currently in service.
func (v *Vehicle) IsActive() bool {
	return v.active
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	v.name = name
	return nil
}
