package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingName    = errors.New("name is required")
	ErrNoAtoms        = errors.New("molecule needs at least one atom")
	ErrMissingElement = errors.New("atom element is required")
	ErrMissingNuclei  = errors.New("spectrum needs nuclei or a known experiment type")
	ErrMissingNucleus = errors.New("pick needs a nucleus")
	ErrBadTolerance   = errors.New("tolerance must be positive")
	ErrRootOutOfRange = errors.New("root atom outside molecule")
	ErrRootExcluded   = errors.New("root atom is excluded")
	ErrNegativeSphere = errors.New("max sphere must not be negative")
)

// Sentinel errors for entity lookups.
var (
	ErrMoleculeNotFound = errors.New("molecule not found")
	ErrFragmentNotFound = errors.New("fragment not found")
	ErrSpectrumNotFound = errors.New("spectrum not found")
)

// ErrDuplicateKey indicates a unique constraint violation (maps to HTTP 409 Conflict).
var ErrDuplicateKey = errors.New("duplicate key")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
