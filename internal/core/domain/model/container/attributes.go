package container

import (
	"fmt"

	"yard/internal/pkg/errs"
)

// Size represents the physical length class of a container.
// A Full container occupies both sub-slots of a bay; a Half container
// occupies exactly one sub-slot.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	SizeUnknown Size = iota

	// Half is a half-bay-length container occupying one sub-slot.
	Half

	// Full is a full-bay-length container occupying both sub-slots.
	Full
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "Unknown",
		Half:        "Half",
		Full:        "Full",
	}
}

// Validate checks if the Size value is valid.
// Valid sizes are Half and Full; SizeUnknown and any other values are invalid.
func (s Size) Validate() error {
	if s != Half && s != Full {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the human-readable name of the size.
// This method implements the fmt.Stringer interface and is safe
// to call on any Size value, including invalid ones.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// SizeFromString parses a size name, accepting the values produced by String.
func SizeFromString(s string) (Size, error) {
	for size, str := range getSizeStrings() {
		if str == s && size != SizeUnknown {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%q is not a valid size", s))
}

// LoadState represents whether a container carries cargo.
// It drives the weight-distribution stacking rule: a laden container may not
// rest directly on an empty one.
type LoadState int

const (
	// LoadStateUnknown represents an invalid or undefined load state.
	LoadStateUnknown LoadState = iota

	// Empty is a container without cargo.
	Empty

	// Laden is a container carrying cargo.
	Laden
)

func getLoadStateStrings() map[LoadState]string {
	return map[LoadState]string{
		LoadStateUnknown: "Unknown",
		Empty:            "Empty",
		Laden:            "Laden",
	}
}

// Validate checks if the LoadState value is valid.
// Valid load states are Empty and Laden.
func (l LoadState) Validate() error {
	if l != Empty && l != Laden {
		return errs.NewValueIsInvalidErrorWithCause("loadState is invalid", fmt.Errorf("%d is not a valid load state", l))
	}
	return nil
}

// String returns the human-readable name of the load state.
// This method implements the fmt.Stringer interface.
func (l LoadState) String() string {
	if str, ok := getLoadStateStrings()[l]; ok {
		return str
	}
	return "Unknown"
}

// LoadStateFromString parses a load state name, accepting the values produced by String.
func LoadStateFromString(s string) (LoadState, error) {
	for state, str := range getLoadStateStrings() {
		if str == s && state != LoadStateUnknown {
			return state, nil
		}
	}
	return LoadStateUnknown, errs.NewValueIsInvalidErrorWithCause(
		"loadState is invalid", fmt.Errorf("%q is not a valid load state", s))
}
