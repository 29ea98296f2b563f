// Package workorder models the tracked placement task: the work order
// aggregate, its lifecycle state machine, and the dispatch priority scale.
//
// Work orders are append-only task history: they are created Pending,
// optionally assigned to a vehicle, and terminate as Completed or Cancelled.
// The Assigned -> Completed transition is the only point in the system where
// yard occupancy is mutated, which is why completion lives in a command
// handler that coordinates the aggregate with the occupancy grid.
package workorder
