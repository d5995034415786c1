// Package kernelerr defines the error kinds the boolean pipeline surfaces.
//
// Callers should prefer errors.Is against the sentinel values below rather
// than comparing error values directly, since wrapping may add context at
// each layer the error passes through.
package kernelerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the boolean pipeline.
var (
	// ErrNonManifoldResult indicates a sewn result has a half-edge without
	// a twin, or a vertex belonging to an odd number of half-edges.
	ErrNonManifoldResult = errors.New("kernelerr: non-manifold result")

	// ErrZeroLengthGeometry indicates a degenerate segment reached a stage
	// that assumes non-degenerate input; a primitive builder should have
	// rejected it upstream.
	ErrZeroLengthGeometry = errors.New("kernelerr: zero-length geometry")

	// ErrUnsupportedSurfacePair indicates SSI cannot handle a specific
	// surface-variant combination and no tessellated fallback exists.
	ErrUnsupportedSurfacePair = errors.New("kernelerr: unsupported surface pair")

	// ErrSplitFailed indicates a face that was supposed to be divided
	// still contains both sides of the intersection curve after split.
	ErrSplitFailed = errors.New("kernelerr: split failed")
)

// NonManifold wraps ErrNonManifoldResult with a description of which
// invariant failed.
func NonManifold(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNonManifoldResult, fmt.Sprintf(format, args...))
}

// ZeroLengthGeometry wraps ErrZeroLengthGeometry with context.
func ZeroLengthGeometry(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrZeroLengthGeometry, fmt.Sprintf(format, args...))
}

// UnsupportedSurfacePair wraps ErrUnsupportedSurfacePair, naming the two
// surface kinds that could not be dispatched.
func UnsupportedSurfacePair(kindA, kindB string) error {
	return fmt.Errorf("%w: %s x %s", ErrUnsupportedSurfacePair, kindA, kindB)
}

// SplitFailed wraps ErrSplitFailed, reporting the offending face id.
func SplitFailed(faceID int, format string, args ...any) error {
	return fmt.Errorf("%w: face %d: %s", ErrSplitFailed, faceID, fmt.Sprintf(format, args...))
}
