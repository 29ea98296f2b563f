package yard

import (
	"fmt"
	"sort"
	"sync"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
)

// OccupancyView is the read-only interface over the occupancy state that the
// stacking validator and suggestion engine consume. It answers "what occupies
// coordinate C right now" without exposing mutation.
type OccupancyView interface {
	// IsVacant reports whether the coordinate holds no container.
	IsVacant(coordinate kernel.Coordinate) bool

	// OccupantAt returns the container occupying the coordinate, or nil when
	// vacant. A full-length container is the occupant of both sub-slot halves
	// of its bay.
	OccupantAt(coordinate kernel.Coordinate) *container.Container

	// OccupantBelow returns the container occupying the coordinate directly
	// beneath (same zone, row, bay, sub-slot, tier - 1), or nil when vacant
	// or at ground level.
	OccupantBelow(coordinate kernel.Coordinate) *container.Container
}

// VacancyFilter narrows a ListVacant scan. Nil fields mean "no restriction";
// Limit <= 0 means unbounded.
type VacancyFilter struct {
	Zone  *kernel.Zone
	Tier  *kernel.Tier
	Limit int
}

// OccupiedSlot pairs an occupancy record with its container for snapshots.
type OccupiedSlot struct {
	Position  *Position
	Container *container.Container
}

// Snapshot is a point-in-time copy of the occupancy state with aggregate
// statistics, produced for the layout query.
type Snapshot struct {
	Capacity   int
	Occupied   []OccupiedSlot
	ZoneCounts map[kernel.Zone]int
	LadenCount int
	EmptyCount int
}

// occupant is one bound container. A full-length container is registered
// under both sub-slot coordinates of its bay; both map entries share the
// same occupant so the footprint is released as a unit.
type occupant struct {
	position  *Position
	container *container.Container
}

// Grid is the single source of truth for yard occupancy at runtime: a map
// from coordinate to occupant guarded by one read-write mutex. All mutations
// go through Bind, Unbind, and Move, which are the linearization points that
// guarantee at most one occupancy record per coordinate even under concurrent
// writers. Durable state is persisted separately; the grid is seeded from the
// position repository at startup and written through on every mutation.
//
// The Bind and Move validation callbacks run while the grid lock is held, so
// the stacking rules are checked against exactly the state that the mutation
// will commit against. Callbacks must not call back into the Grid; they
// receive a view that reads the locked state directly.
type Grid struct {
	mu          sync.RWMutex
	slots       map[kernel.Coordinate]*occupant
	byContainer map[kernel.UUID]*occupant
}

// NewGrid creates an empty occupancy grid for the configured yard topology.
func NewGrid() *Grid {
	return &Grid{
		slots:       make(map[kernel.Coordinate]*occupant),
		byContainer: make(map[kernel.UUID]*occupant),
	}
}

// Capacity returns the total number of addressable slots in the topology.
func (g *Grid) Capacity() int {
	return len(kernel.ActiveZones()) * int(kernel.RowMax) * int(kernel.BayMax) * int(kernel.TierMax) * len(kernel.SubSlots())
}

// IsVacant reports whether the coordinate holds no container.
func (g *Grid) IsVacant(coordinate kernel.Coordinate) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.isVacantLocked(coordinate)
}

// OccupantAt returns the container occupying the coordinate, or nil when vacant.
func (g *Grid) OccupantAt(coordinate kernel.Coordinate) *container.Container {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.occupantAtLocked(coordinate)
}

// OccupantBelow returns the container directly beneath the coordinate,
// or nil when vacant or at ground level.
func (g *Grid) OccupantBelow(coordinate kernel.Coordinate) *container.Container {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.occupantBelowLocked(coordinate)
}

// PositionOf returns the occupancy record of the given container,
// or nil when the container is not placed in the yard.
func (g *Grid) PositionOf(containerID kernel.UUID) *Position {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if occ, ok := g.byContainer[containerID]; ok {
		return occ.position
	}
	return nil
}

// Bind establishes an occupancy record atomically. It fails with
// ErrPositionOccupied when any slot of the container's footprint is already
// bound, and with ErrContainerAlreadyPlaced when the container occupies
// another coordinate. When a validate callback is given it runs inside the
// critical section, immediately before binding, so two concurrent binds
// converging on the same coordinate cannot both pass: exactly one wins and
// the other observes ErrPositionOccupied.
func (g *Grid) Bind(position *Position, cont *container.Container, validate func(view OccupancyView) error) error {
	if err := position.Validate(); err != nil {
		return err
	}
	if err := cont.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, placed := g.byContainer[position.ContainerID()]; placed {
		return fmt.Errorf("%w: container %s", ErrContainerAlreadyPlaced, position.ContainerID())
	}

	cells := footprint(position.Coordinate(), cont)
	for _, cell := range cells {
		if !g.isVacantLocked(cell) {
			return fmt.Errorf("%w: %s", ErrPositionOccupied, cell)
		}
	}

	if validate != nil {
		if err := validate(lockedView{g}); err != nil {
			return err
		}
	}

	occ := &occupant{position: position, container: cont}
	for _, cell := range cells {
		g.slots[cell] = occ
	}
	g.byContainer[position.ContainerID()] = occ
	return nil
}

// Unbind removes the occupancy record at the coordinate and returns it.
// It fails with ErrPositionNotFound when the coordinate is vacant and with
// ErrPositionSupportsOthers when another container rests directly on top of
// the occupant's footprint.
func (g *Grid) Unbind(coordinate kernel.Coordinate) (*Position, error) {
	if err := coordinate.Validate(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	occ, ok := g.slots[coordinate]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPositionNotFound, coordinate)
	}

	cells := footprint(occ.position.Coordinate(), occ.container)
	if err := g.checkNothingAboveLocked(occ, cells); err != nil {
		return nil, err
	}

	g.removeLocked(occ, cells)
	return occ.position, nil
}

// Move relocates the occupant of from to the coordinate to as one atomic
// step: the old footprint is released, the validate callback re-checks the
// stacking rules against that intermediate state, and the new footprint is
// bound, all under a single lock acquisition. No observer ever sees the
// container in both places, or in neither while a competing bind slips in.
// On any failure the original binding is left untouched.
func (g *Grid) Move(from, to kernel.Coordinate, validate func(view OccupancyView) error) (*Position, error) {
	if err := from.Validate(); err != nil {
		return nil, err
	}
	if err := to.Validate(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	occ, ok := g.slots[from]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPositionNotFound, from)
	}

	oldCells := footprint(occ.position.Coordinate(), occ.container)
	if err := g.checkNothingAboveLocked(occ, oldCells); err != nil {
		return nil, err
	}

	// Release the old footprint first so validation does not see the
	// container supporting or blocking its own destination.
	g.removeLocked(occ, oldCells)

	restore := func() {
		for _, cell := range oldCells {
			g.slots[cell] = occ
		}
		g.byContainer[occ.position.ContainerID()] = occ
	}

	newCells := footprint(to, occ.container)
	for _, cell := range newCells {
		if !g.isVacantLocked(cell) {
			restore()
			return nil, fmt.Errorf("%w: %s", ErrPositionOccupied, cell)
		}
	}

	if validate != nil {
		if err := validate(lockedView{g}); err != nil {
			restore()
			return nil, err
		}
	}

	if err := occ.position.Relocate(to); err != nil {
		restore()
		return nil, err
	}

	for _, cell := range newCells {
		g.slots[cell] = occ
	}
	g.byContainer[occ.position.ContainerID()] = occ
	return occ.position, nil
}

// ListVacant produces the vacant coordinates matching the filter in the
// deterministic scan order zone, row, bay, tier, subSlot. Two calls against
// the same occupancy state return the same sequence.
func (g *Grid) ListVacant(filter VacancyFilter) []kernel.Coordinate {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vacant := make([]kernel.Coordinate, 0)
	for _, zone := range kernel.ActiveZones() {
		if filter.Zone != nil && zone != *filter.Zone {
			continue
		}
		for row := kernel.RowMin; row <= kernel.RowMax; row++ {
			for bay := kernel.BayMin; bay <= kernel.BayMax; bay++ {
				for tier := kernel.TierMin; tier <= kernel.TierMax; tier++ {
					if filter.Tier != nil && tier != *filter.Tier {
						continue
					}
					for _, subSlot := range kernel.SubSlots() {
						coordinate, err := kernel.NewCoordinate(zone, row, bay, tier, subSlot)
						if err != nil {
							continue
						}
						if !g.isVacantLocked(coordinate) {
							continue
						}
						vacant = append(vacant, coordinate)
						if filter.Limit > 0 && len(vacant) >= filter.Limit {
							return vacant
						}
					}
				}
			}
		}
	}
	return vacant
}

// Snapshot returns a point-in-time copy of the occupancy state with
// aggregate statistics. Occupied slots are ordered by scan order; a
// full-length container appears once, under its record's coordinate.
func (g *Grid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snapshot := Snapshot{
		Capacity:   g.Capacity(),
		Occupied:   make([]OccupiedSlot, 0, len(g.byContainer)),
		ZoneCounts: make(map[kernel.Zone]int),
	}

	for _, occ := range g.byContainer {
		snapshot.Occupied = append(snapshot.Occupied, OccupiedSlot{
			Position:  occ.position,
			Container: occ.container,
		})
		snapshot.ZoneCounts[occ.position.Coordinate().Zone()]++
		if occ.container.IsLaden() {
			snapshot.LadenCount++
		} else {
			snapshot.EmptyCount++
		}
	}

	sort.Slice(snapshot.Occupied, func(i, j int) bool {
		return snapshot.Occupied[i].Position.Coordinate().Compare(snapshot.Occupied[j].Position.Coordinate()) < 0
	})

	return snapshot
}

// lockedView adapts the grid's lock-free readers to OccupancyView for
// validation callbacks running inside a critical section.
type lockedView struct {
	grid *Grid
}

func (v lockedView) IsVacant(coordinate kernel.Coordinate) bool {
	return v.grid.isVacantLocked(coordinate)
}

func (v lockedView) OccupantAt(coordinate kernel.Coordinate) *container.Container {
	return v.grid.occupantAtLocked(coordinate)
}

func (v lockedView) OccupantBelow(coordinate kernel.Coordinate) *container.Container {
	return v.grid.occupantBelowLocked(coordinate)
}

func (g *Grid) isVacantLocked(coordinate kernel.Coordinate) bool {
	_, ok := g.slots[coordinate]
	return !ok
}

func (g *Grid) occupantAtLocked(coordinate kernel.Coordinate) *container.Container {
	if occ, ok := g.slots[coordinate]; ok {
		return occ.container
	}
	return nil
}

func (g *Grid) occupantBelowLocked(coordinate kernel.Coordinate) *container.Container {
	below, ok := coordinate.Below()
	if !ok {
		return nil
	}
	return g.occupantAtLocked(below)
}

// checkNothingAboveLocked fails when any cell of the footprint carries a
// different occupant directly above it.
func (g *Grid) checkNothingAboveLocked(occ *occupant, cells []kernel.Coordinate) error {
	for _, cell := range cells {
		above, ok := cell.Above()
		if !ok {
			continue
		}
		if resting, occupied := g.slots[above]; occupied && resting != occ {
			return fmt.Errorf("%w: %s carries %s", ErrPositionSupportsOthers, cell, resting.container.Number())
		}
	}
	return nil
}

func (g *Grid) removeLocked(occ *occupant, cells []kernel.Coordinate) {
	for _, cell := range cells {
		delete(g.slots, cell)
	}
	delete(g.byContainer, occ.position.ContainerID())
}

// footprint returns the coordinates a container physically occupies when its
// record is bound at coordinate: one sub-slot for a half-length container,
// both halves of the bay for a full-length one.
func footprint(coordinate kernel.Coordinate, cont *container.Container) []kernel.Coordinate {
	if cont.IsFullSize() {
		return []kernel.Coordinate{coordinate, coordinate.WithSubSlot(coordinate.SubSlot().Opposite())}
	}
	return []kernel.Coordinate{coordinate}
}
