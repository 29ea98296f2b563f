// Package container models the shipping container reference entity.
// The placement core never mutates containers; it only reads the attributes
// that the stacking rules and the suggestion heuristic consult: length class,
// load state, and owning company.
package container
