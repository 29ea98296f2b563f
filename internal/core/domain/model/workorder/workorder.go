package workorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

// Domain errors for work order operations.
var (
	// ErrWorkOrderIsNotConstructed is returned when using an improperly initialized WorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")
)

// WorkOrder is the aggregate root representing one tracked placement task:
// "move container X to coordinate Y". It owns the status state machine and
// is never deleted; terminal states close it while preserving the history.
//
// WorkOrder follows these invariants:
//   - Must have a valid unique identifier, coordinate, and container reference
//   - Status transitions follow the Pending -> Assigned -> Completed machine,
//     with cancellation allowed from any non-terminal state
//   - A vehicle is attached exactly when the status is Assigned or Completed
//   - Can only be created through NewWorkOrder or RestoreWorkOrder
type WorkOrder struct {
	// id is the unique identifier for the work order
	id kernel.UUID

	// number is the human-facing order reference, e.g. "WO-4F2A91C3"
	number string

	// coordinate is the placement target
	coordinate kernel.Coordinate

	// containerID references the container to be placed
	containerID kernel.UUID

	// priority orders the work for dispatch
	priority Priority

	// status is the current lifecycle state
	status Status

	// vehicleID is the attached yard equipment (nil while unassigned)
	vehicleID *kernel.UUID

	// createdAt is when the order was created
	createdAt time.Time

	// completedAt is set by the Completed transition
	completedAt *time.Time

	// guard ensures the work order was properly constructed
	guard guard.ConstructorGuard
}

// NewWorkOrder creates a new work order in Pending status with no vehicle.
// The order number is derived from the identifier.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - coordinate: Placement target (must be valid)
//   - containerID: Container to place (must be valid UUID)
//   - priority: Dispatch priority (must be valid)
func NewWorkOrder(
	id kernel.UUID,
	coordinate kernel.Coordinate,
	containerID kernel.UUID,
	priority Priority,
) (*WorkOrder, error) {
	order := &WorkOrder{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCoordinate(coordinate),
		order.setContainerID(containerID),
		order.setPriority(priority),
	); err != nil {
		return nil, err
	}

	order.number = numberFromID(id)
	return order, nil
}

// RestoreWorkOrder reconstructs a work order from persistent storage,
// preserving its status, vehicle assignment, and timestamps.
func RestoreWorkOrder(
	id kernel.UUID,
	number string,
	coordinate kernel.Coordinate,
	containerID kernel.UUID,
	priority Priority,
	status Status,
	vehicleID *kernel.UUID,
	createdAt time.Time,
	completedAt *time.Time,
) (*WorkOrder, error) {
	order, err := NewWorkOrder(id, coordinate, containerID, priority)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveVehicle(vehicleID != nil); err != nil {
		return nil, err
	}

	if number != "" {
		order.number = number
	}
	order.status = status
	order.vehicleID = vehicleID
	order.createdAt = createdAt
	order.completedAt = completedAt
	return order, nil
}

// ValidateCanHaveVehicle validates the consistency between order status and
// vehicle assignment. Pending orders must not carry a vehicle; Assigned and
// Completed orders must. Cancelled orders may or may not, depending on when
// they were cancelled.
func (s Status) ValidateCanHaveVehicle(vehicle bool) error {
	if vehicle && s == Pending {
		return fmt.Errorf("%s is not a valid status to have a vehicle", s.String())
	}
	if !vehicle && (s == Assigned || s == Completed) {
		return fmt.Errorf("%s is not a valid status to have no vehicle", s.String())
	}
	return nil
}

// Validate ensures the WorkOrder instance was properly constructed.
func (w *WorkOrder) Validate() error {
	if w == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return w.guard.Validate(ErrWorkOrderIsNotConstructed)
}

// IsEqual compares two work orders by their unique identifiers.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

// Number returns the human-facing order reference.
func (w *WorkOrder) Number() string {
	return w.number
}

// Coordinate returns the placement target.
func (w *WorkOrder) Coordinate() kernel.Coordinate {
	return w.coordinate
}

// ContainerID returns the identifier of the container to be placed.
func (w *WorkOrder) ContainerID() kernel.UUID {
	return w.containerID
}

// Priority returns the dispatch priority.
func (w *WorkOrder) Priority() Priority {
	return w.priority
}

// Status returns the current lifecycle state.
func (w *WorkOrder) Status() Status {
	return w.status
}

// Vehicle returns the attached vehicle's ID, or nil while unassigned.
func (w *WorkOrder) Vehicle() *kernel.UUID {
	return w.vehicleID
}

// CreatedAt returns when the order was created.
func (w *WorkOrder) CreatedAt() time.Time {
	return w.createdAt
}

// CompletedAt returns when the order completed, or nil before completion.
func (w *WorkOrder) CompletedAt() *time.Time {
	return w.completedAt
}

// Assign attaches a vehicle and transitions the status to Assigned.
// The caller is responsible for confirming the vehicle is active;
// the aggregate only enforces the state machine.
//
// Business rules:
//   - The vehicle ID must be valid
//   - The order must be Pending or Assigned (reassignment is allowed)
func (w *WorkOrder) Assign(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	newStatus, err := w.status.Assign()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.vehicleID = &vehicleID
	return nil
}

// Complete marks the physical move as confirmed and records the completion
// time. The order must be Assigned. Binding the occupancy itself is the
// caller's responsibility and happens in the same transaction.
func (w *WorkOrder) Complete() error {
	newStatus, err := w.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	w.status = newStatus
	w.completedAt = &now
	return nil
}

// Cancel withdraws the order before completion. The order must be Pending
// or Assigned. Cancellation never touches occupancy.
func (w *WorkOrder) Cancel() error {
	newStatus, err := w.status.Cancel()
	if err != nil {
		return err
	}

	w.status = newStatus
	return nil
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}
	w.coordinate = coordinate
	return nil
}

func (w *WorkOrder) setContainerID(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}
	w.containerID = containerID
	return nil
}

func (w *WorkOrder) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	w.priority = priority
	return nil
}

// numberFromID derives the human-facing order reference from the UUID.
func numberFromID(id kernel.UUID) string {
	return "WO-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
