package container

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/errs"
	"yard/internal/pkg/guard"
)

// Domain errors for container operations.
var (
	// ErrNumberIsRequired is returned when attempting to create a container without a number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	// ErrContainerIsNotConstructed is returned when using an improperly initialized Container.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")
)

// Container represents a shipping container known to the yard.
// The placement core treats it as read-only reference data supplied by an
// external collaborator: identity, owning company, physical length class, and
// load state are the only attributes the placement rules consult.
//
// Key attributes:
//   - Number: the identifying container number painted on the box
//   - Size: full-bay or half-bay length, driving the size-compatibility rule
//   - LoadState: laden or empty, driving the weight-distribution rule
//   - OwnerID: the owning company, used by the suggestion grouping heuristic
type Container struct {
	// id uniquely identifies the container
	id kernel.UUID
	// number is the identifying container number, e.g. "MSCU1234567"
	number string
	// ownerID identifies the owning company
	ownerID kernel.UUID
	// size is the physical length class of the container
	size Size
	// loadState indicates whether the container is laden or empty
	loadState LoadState
	// guard ensures the container was properly constructed
	guard guard.ConstructorGuard
}

// NewContainer creates a new Container with the specified attributes.
// This is the only way to create a valid Container instance.
//
// Parameters:
//   - id: Unique identifier for the container (must be valid UUID)
//   - number: Identifying container number (must be non-empty)
//   - ownerID: Identifier of the owning company (must be valid UUID)
//   - size: Physical length class (must be a valid Size)
//   - loadState: Laden or empty (must be a valid LoadState)
func NewContainer(
	id kernel.UUID,
	number string,
	ownerID kernel.UUID,
	size Size,
	loadState LoadState,
) (*Container, error) {
	cont := &Container{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cont.setID(id),
		cont.setNumber(number),
		cont.setOwnerID(ownerID),
		cont.setSize(size),
		cont.setLoadState(loadState),
	); err != nil {
		return nil, err
	}

	return cont, nil
}

// RestoreContainer reconstructs a Container from persistent storage.
// The restored container behaves identically to one created via NewContainer;
// the same validation rules apply.
func RestoreContainer(
	id kernel.UUID,
	number string,
	ownerID kernel.UUID,
	size Size,
	loadState LoadState,
) (*Container, error) {
	return NewContainer(id, number, ownerID, size, loadState)
}

// Validate ensures the Container instance was properly constructed through NewContainer.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// IsEqual compares two containers by their unique identifiers.
func (c *Container) IsEqual(other *Container) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the container's unique identifier.
func (c *Container) ID() kernel.UUID {
	return c.id
}

// Number returns the identifying container number.
func (c *Container) Number() string {
	return c.number
}

// OwnerID returns the identifier of the owning company.
func (c *Container) OwnerID() kernel.UUID {
	return c.ownerID
}

// Size returns the physical length class of the container.
func (c *Container) Size() Size {
	return c.size
}

// LoadState returns whether the container is laden or empty.
func (c *Container) LoadState() LoadState {
	return c.loadState
}

// IsLaden reports whether the container carries cargo.
func (c *Container) IsLaden() bool {
	return c.loadState == Laden
}

// IsFullSize reports whether the container occupies a full bay length.
func (c *Container) IsFullSize() bool {
	return c.size == Full
}

func (c *Container) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Container) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	c.number = number
	return nil
}

func (c *Container) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *Container) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *Container) setLoadState(loadState LoadState) error {
	if err := loadState.Validate(); err != nil {
		return err
	}
	c.loadState = loadState
	return nil
}
