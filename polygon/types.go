// Package polygon defines the sentinel errors for ring validation.
package polygon

import "errors"

// Sentinel errors for ring validation.
var (
	// ErrRingTooShort indicates a ring with fewer than three vertices.
	ErrRingTooShort = errors.New("polygon: ring needs at least three vertices")

	// ErrRepeatedPoint indicates two consecutive coincident ring vertices
	// (including an explicitly repeated closing vertex).
	ErrRepeatedPoint = errors.New("polygon: repeated consecutive ring vertex")

	// ErrZeroArea indicates a ring that encloses no area.
	ErrZeroArea = errors.New("polygon: ring encloses zero area")
)
