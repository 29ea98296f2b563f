package services

import (
	"errors"

	"yard/internal/core/domain/model/vehicle"
	"yard/internal/core/domain/model/workorder"
)

var (
	// ErrVehicleInactive is returned when a work order is assigned to a
	// vehicle that exists but is not active. The caller may pick a different
	// vehicle or leave the order pending.
	ErrVehicleInactive = errors.New("vehicle is inactive")

	// ErrVehicleNotFound is returned by auto-dispatch when no active vehicle
	// is available at all.
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// VehicleDispatcher is a domain service that attaches vehicles to work
// orders.
//
// It serves two paths. On the manual path a caller names a specific vehicle
// and the dispatcher only checks that the vehicle is active. On the
// automatic path the dispatcher picks the active vehicle carrying the fewest
// open orders, spreading the workload evenly.
type VehicleDispatcher struct{}

// NewVehicleDispatcher creates a new VehicleDispatcher instance.
func NewVehicleDispatcher() VehicleDispatcher {
	return VehicleDispatcher{}
}

// AssignVehicle attaches the given vehicle to the order after confirming the
// vehicle is active. It fails with ErrVehicleInactive otherwise.
func (d VehicleDispatcher) AssignVehicle(order *workorder.WorkOrder, v *vehicle.Vehicle) error {
	if err := order.Validate(); err != nil {
		return err
	}

	if err := v.Validate(); err != nil {
		return err
	}

	if !v.IsActive() {
		return ErrVehicleInactive
	}

	return order.Assign(v.ID())
}

// Dispatch picks the least-loaded active vehicle for the order and assigns
// it. The load of a vehicle is the number of open orders already attached to
// it. Ties go to the first vehicle in the slice. It fails with
// ErrVehicleNotFound when no active vehicle is available.
func (d VehicleDispatcher) Dispatch(
	order *workorder.WorkOrder,
	vehicles []*vehicle.Vehicle,
	openOrders []*workorder.WorkOrder,
) (*vehicle.Vehicle, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := order.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	best, err := d.findLeastLoadedVehicle(vehicles, openOrders)
	if err != nil {
		return nil, err
	}

	if err = order.Assign(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

func (d VehicleDispatcher) findLeastLoadedVehicle(
	vehicles []*vehicle.Vehicle,
	openOrders []*workorder.WorkOrder,
) (*vehicle.Vehicle, error) {
	var (
		best     *vehicle.Vehicle
		bestLoad int
	)

	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}

		if !v.IsActive() {
			continue
		}

		load := 0
		for _, open := range openOrders {
			if open.Vehicle() != nil && open.Vehicle().IsEqual(v.ID()) {
				load++
			}
		}

		if best == nil || load < bestLoad {
			best = v
			bestLoad = load
		}
	}

	if best == nil {
		return nil, ErrVehicleNotFound
	}

	return best, nil
}
