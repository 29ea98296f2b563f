// Package yard implements the addressing and occupancy model: the single
// source of truth for what occupies each coordinate of the yard.
//
// The package provides:
//   - Position: the occupancy record aggregate binding a container to a coordinate
//   - Grid: the mutex-guarded in-memory occupancy map with atomic Bind,
//     Unbind, and Move operations
//   - OccupancyView: the read-only interface consumed by the stacking
//     validator and the placement suggestion engine
//
// Concurrency: the Grid's mutex is the mutual-exclusion scope required for
// occupancy mutations. Suggestions read the grid without reserving anything;
// correctness is enforced at bind time, where the optional validation
// callback re-checks the stacking rules inside the critical section.
package yard
