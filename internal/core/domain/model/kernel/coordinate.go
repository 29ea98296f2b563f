package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"yard/internal/pkg/errs"
	"yard/internal/pkg/guard"
)

// Zone is a letter code identifying a yard zone.
// The topology currently defines one active zone; the remaining codes are
// reserved for future expansion and are rejected as invalid.
type Zone string

// Row is a bounded horizontal grid index within a zone.
type Row int8

// Bay is a bounded horizontal grid index within a row.
type Bay int8

// Tier is a bounded vertical stack height. Tier 1 is ground level.
type Tier int8

// SubSlot partitions a bay into two halves for half-length containers.
type SubSlot string

// Yard topology bounds. Bounds are enforced only here, in the Coordinate
// constructor, so no other component needs its own range validation.
const (
	// ZoneA is the single active zone of the current yard topology.
	ZoneA Zone = "A"

	// RowMin is the minimum valid row index.
	RowMin Row = 1
	// RowMax is the maximum valid row index.
	RowMax Row = 20
	// BayMin is the minimum valid bay index.
	BayMin Bay = 1
	// BayMax is the maximum valid bay index.
	BayMax Bay = 40
	// TierMin is the ground tier.
	TierMin Tier = 1
	// TierMax is the maximum stacking height.
	TierMax Tier = 4

	// SubSlotA is the left half of a bay.
	SubSlotA SubSlot = "A"
	// SubSlotB is the right half of a bay.
	SubSlotB SubSlot = "B"
)

// Coordinate validation errors. Each names the offending coordinate part so
// callers can branch on the exact failure.
var (
	// ErrInvalidZone is returned when the zone code is not an active zone.
	ErrInvalidZone = errors.New("zone is invalid")
	// ErrInvalidRow is returned when the row index is out of range.
	ErrInvalidRow = errors.New("row is invalid")
	// ErrInvalidBay is returned when the bay index is out of range.
	ErrInvalidBay = errors.New("bay is invalid")
	// ErrInvalidTier is returned when the tier is out of range.
	ErrInvalidTier = errors.New("tier is invalid")
	// ErrInvalidSubSlot is returned when the sub-slot is neither A nor B.
	ErrInvalidSubSlot = errors.New("subSlot is invalid")

	// ErrCoordinateIsNotConstructed is returned when attempting to use an improperly
	// initialized Coordinate. Coordinates must be created via NewCoordinate or
	// ParseCoordinate to ensure validity.
	ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
		"coordinate must be created via NewCoordinate or ParseCoordinate constructors")
)

// ActiveZones returns the zones of the current yard topology in scan order.
func ActiveZones() []Zone {
	return []Zone{ZoneA}
}

// SubSlots returns both sub-slot halves in scan order.
func SubSlots() []SubSlot {
	return []SubSlot{SubSlotA, SubSlotB}
}

// Opposite returns the other half of the same bay.
func (s SubSlot) Opposite() SubSlot {
	if s == SubSlotA {
		return SubSlotB
	}
	return SubSlotA
}

// Validate checks that the zone is part of the active topology.
// Returns ErrInvalidZone otherwise.
func (z Zone) Validate() error {
	for _, active := range ActiveZones() {
		if z == active {
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not an active zone", ErrInvalidZone, z)
}

// Validate checks that the tier is within the stacking bounds.
// Returns ErrInvalidTier otherwise.
func (t Tier) Validate() error {
	if t < TierMin || t > TierMax {
		return fmt.Errorf("%w: %d is not within [%d..%d]", ErrInvalidTier, t, TierMin, TierMax)
	}
	return nil
}

// RowFromInt converts a plain integer to a Row. The bounds are checked on
// the int itself, before the narrowing conversion can wrap the value.
func RowFromInt(value int) (Row, error) {
	if value < int(RowMin) || value > int(RowMax) {
		return 0, fmt.Errorf("%w: %d is not within [%d..%d]", ErrInvalidRow, value, RowMin, RowMax)
	}
	return Row(value), nil
}

// BayFromInt converts a plain integer to a Bay. The bounds are checked on
// the int itself, before the narrowing conversion can wrap the value.
func BayFromInt(value int) (Bay, error) {
	if value < int(BayMin) || value > int(BayMax) {
		return 0, fmt.Errorf("%w: %d is not within [%d..%d]", ErrInvalidBay, value, BayMin, BayMax)
	}
	return Bay(value), nil
}

// TierFromInt converts a plain integer to a Tier. The bounds are checked on
// the int itself, before the narrowing conversion can wrap the value.
func TierFromInt(value int) (Tier, error) {
	if value < int(TierMin) || value > int(TierMax) {
		return 0, fmt.Errorf("%w: %d is not within [%d..%d]", ErrInvalidTier, value, TierMin, TierMax)
	}
	return Tier(value), nil
}

// Coordinate identifies a single addressable slot in the yard as the tuple
// (zone, row, bay, tier, subSlot). It is an immutable value object whose
// parts are guaranteed to be within the topology bounds.
// The zero value of Coordinate is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	coord, err := kernel.NewCoordinate(kernel.ZoneA, 3, 12, 2, kernel.SubSlotB)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Slot: %s", coord) // Output: A-03-12-2-B
type Coordinate struct { //nolint:recvcheck //using for validation
	zone    Zone
	row     Row
	bay     Bay
	tier    Tier
	subSlot SubSlot
	guard   guard.ConstructorGuard
}

// NewCoordinate creates a new Coordinate with the specified parts.
// Every part is validated against the yard topology; violations are reported
// with the part-specific errors ErrInvalidZone, ErrInvalidRow, ErrInvalidBay,
// ErrInvalidTier, and ErrInvalidSubSlot, aggregated via errors.Join.
func NewCoordinate(zone Zone, row Row, bay Bay, tier Tier, subSlot SubSlot) (Coordinate, error) {
	coord := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coord.setZone(zone),
		coord.setRow(row),
		coord.setBay(bay),
		coord.setTier(tier),
		coord.setSubSlot(subSlot),
	); err != nil {
		return Coordinate{}, err
	}

	return coord, nil
}

// ParseCoordinate parses the canonical string rendering produced by String,
// e.g. "A-03-12-2-B". Leading zeros in the row and bay parts are optional.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 5 {
		return Coordinate{}, errs.NewValueIsInvalidErrorWithCause(
			"coordinate", fmt.Errorf("%q is not of the form Z-RR-BB-T-S", s))
	}

	rawRow, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q is not a number", ErrInvalidRow, parts[1])
	}
	row, err := RowFromInt(rawRow)
	if err != nil {
		return Coordinate{}, err
	}

	rawBay, err := strconv.Atoi(parts[2])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q is not a number", ErrInvalidBay, parts[2])
	}
	bay, err := BayFromInt(rawBay)
	if err != nil {
		return Coordinate{}, err
	}

	rawTier, err := strconv.Atoi(parts[3])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q is not a number", ErrInvalidTier, parts[3])
	}
	tier, err := TierFromInt(rawTier)
	if err != nil {
		return Coordinate{}, err
	}

	return NewCoordinate(Zone(parts[0]), row, bay, tier, SubSlot(parts[4]))
}

// Validate checks if the Coordinate was properly constructed using a constructor.
// The zero value of Coordinate is invalid and will fail this validation.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Zone returns the zone code.
func (c Coordinate) Zone() Zone {
	return c.zone
}

// Row returns the row index.
func (c Coordinate) Row() Row {
	return c.row
}

// Bay returns the bay index.
func (c Coordinate) Bay() Bay {
	return c.bay
}

// Tier returns the stacking tier. Tier 1 is ground level.
func (c Coordinate) Tier() Tier {
	return c.tier
}

// SubSlot returns the bay half.
func (c Coordinate) SubSlot() SubSlot {
	return c.subSlot
}

// String returns the canonical rendering "Z-RR-BB-T-S", e.g. "A-03-12-2-B".
// This method implements the fmt.Stringer interface. The rendering round-trips
// through ParseCoordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("%s-%02d-%02d-%d-%s", c.zone, c.row, c.bay, c.tier, c.subSlot)
}

// IsEqual compares two coordinates for equality.
// Both coordinates must be properly constructed for the comparison to succeed.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c == other, nil
}

// IsGround reports whether the coordinate is at ground level.
func (c Coordinate) IsGround() bool {
	return c.tier == TierMin
}

// Below returns the coordinate directly beneath this one (same zone, row, bay,
// and sub-slot, tier - 1). The second return value is false at ground level,
// where no supporting coordinate exists.
func (c Coordinate) Below() (Coordinate, bool) {
	if c.IsGround() {
		return Coordinate{}, false
	}

	below := c
	below.tier--
	return below, true
}

// Above returns the coordinate directly on top of this one.
// The second return value is false at the maximum tier.
func (c Coordinate) Above() (Coordinate, bool) {
	if c.tier >= TierMax {
		return Coordinate{}, false
	}

	above := c
	above.tier++
	return above, true
}

// WithSubSlot returns the coordinate of the other half of the same bay and tier.
func (c Coordinate) WithSubSlot(subSlot SubSlot) Coordinate {
	other := c
	other.subSlot = subSlot
	return other
}

// Compare orders coordinates by the deterministic scan order:
// zone, then row, then bay, then tier, then subSlot.
// It returns a negative value when c precedes other, zero when equal,
// and a positive value when c follows other.
func (c Coordinate) Compare(other Coordinate) int {
	if c.zone != other.zone {
		return strings.Compare(string(c.zone), string(other.zone))
	}
	if c.row != other.row {
		return int(c.row) - int(other.row)
	}
	if c.bay != other.bay {
		return int(c.bay) - int(other.bay)
	}
	if c.tier != other.tier {
		return int(c.tier) - int(other.tier)
	}
	return strings.Compare(string(c.subSlot), string(other.subSlot))
}

// setZone sets the zone with validation.
// Note: We intentionally use pointer receivers for these private setters to
// enable self-encapsulated validation during object construction, while the
// public API uses value receivers.
func (c *Coordinate) setZone(zone Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	c.zone = zone
	return nil
}

func (c *Coordinate) setRow(row Row) error {
	if row < RowMin || row > RowMax {
		return fmt.Errorf("%w: %d is not within [%d..%d]", ErrInvalidRow, row, RowMin, RowMax)
	}

	c.row = row
	return nil
}

func (c *Coordinate) setBay(bay Bay) error {
	if bay < BayMin || bay > BayMax {
		return fmt.Errorf("%w: %d is not within [%d..%d]", ErrInvalidBay, bay, BayMin, BayMax)
	}

	c.bay = bay
	return nil
}

func (c *Coordinate) setTier(tier Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	c.tier = tier
	return nil
}

func (c *Coordinate) setSubSlot(subSlot SubSlot) error {
	if subSlot != SubSlotA && subSlot != SubSlotB {
		return fmt.Errorf("%w: %q is neither %q nor %q", ErrInvalidSubSlot, subSlot, SubSlotA, SubSlotB)
	}

	c.subSlot = subSlot
	return nil
}
