package services

import (
	"errors"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
)

var (
	// ErrNoSupport is returned when a coordinate above ground level has
	// nothing occupying the slot directly below it.
	ErrNoSupport = errors.New("no support below position")

	// ErrSizeIncompatibility is returned when a full-length container would
	// rest on a tier where only one of the two sub-slot halves is occupied.
	ErrSizeIncompatibility = errors.New("size incompatibility with supporting containers")

	// ErrWeightDistributionViolation is returned when a laden container
	// would rest directly on top of an empty container.
	ErrWeightDistributionViolation = errors.New("weight distribution violation")
)

// stackingRule is a single physical-constraint predicate over a read-only
// occupancy view. Rules are side-effect free.
type stackingRule func(view yard.OccupancyView, coordinate kernel.Coordinate, cont *container.Container) error

// StackingValidator is a domain service that checks whether a container may
// physically occupy a coordinate given the current occupancy of the yard.
//
// The rules are evaluated in a fixed order and the first violation wins:
//  1. the target slot (both halves for a full-length container) must be vacant,
//  2. above ground level the slot directly below must be occupied,
//  3. a full-length container needs both sub-slot halves below it occupied,
//  4. a laden container may not rest on an empty one.
//
// Later rules are meaningless once an earlier one fails, so evaluation stops
// at the first violation. The validator holds no state and is safe for
// concurrent use.
type StackingValidator struct {
	rules []stackingRule
}

// NewStackingValidator creates a StackingValidator with the standard rule set.
func NewStackingValidator() StackingValidator {
	return StackingValidator{
		rules: []stackingRule{
			ruleVacant,
			ruleSupport,
			ruleSizeCompatibility,
			ruleWeightDistribution,
		},
	}
}

// Validate checks the coordinate against every stacking rule in order and
// returns the first violation, or nil when the container may be placed there.
func (v StackingValidator) Validate(view yard.OccupancyView, coordinate kernel.Coordinate, cont *container.Container) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}

	if err := cont.Validate(); err != nil {
		return err
	}

	for _, rule := range v.rules {
		if err := rule(view, coordinate, cont); err != nil {
			return err
		}
	}

	return nil
}

// targetCells returns every cell the container would cover at the coordinate.
// Full-length containers span both sub-slot halves of the bay.
func targetCells(coordinate kernel.Coordinate, cont *container.Container) []kernel.Coordinate {
	cells := []kernel.Coordinate{coordinate}
	if cont.IsFullSize() {
		cells = append(cells, coordinate.WithSubSlot(coordinate.SubSlot().Opposite()))
	}

	return cells
}

func ruleVacant(view yard.OccupancyView, coordinate kernel.Coordinate, cont *container.Container) error {
	for _, cell := range targetCells(coordinate, cont) {
		if !view.IsVacant(cell) {
			return yard.ErrPositionOccupied
		}
	}

	return nil
}

func ruleSupport(view yard.OccupancyView, coordinate kernel.Coordinate, _ *container.Container) error {
	if coordinate.IsGround() {
		return nil
	}

	if view.OccupantBelow(coordinate) == nil {
		return ErrNoSupport
	}

	return nil
}

func ruleSizeCompatibility(view yard.OccupancyView, coordinate kernel.Coordinate, cont *container.Container) error {
	if !cont.IsFullSize() || coordinate.IsGround() {
		return nil
	}

	// Both halves of the bay below must carry something; a full-length
	// container cannot cantilever over a vacant half.
	for _, cell := range targetCells(coordinate, cont) {
		if view.OccupantBelow(cell) == nil {
			return ErrSizeIncompatibility
		}
	}

	return nil
}

func ruleWeightDistribution(view yard.OccupancyView, coordinate kernel.Coordinate, cont *container.Container) error {
	if !cont.IsLaden() || coordinate.IsGround() {
		return nil
	}

	for _, cell := range targetCells(coordinate, cont) {
		support := view.OccupantBelow(cell)
		if support != nil && !support.IsLaden() {
			return ErrWeightDistributionViolation
		}
	}

	return nil
}
