package models

import (
	"fmt"
	"time"

	"github.com/spectrakit/fragmentor/internal/chem"
)

// maxSphereLimit caps extraction depth at the API boundary. The
// fragmenter itself has no limit; this protects the service against
// pathological requests.
const maxSphereLimit = 32

// Fragment is an extracted (and possibly persisted) molecular fragment
// together with the parameters that produced it.
type Fragment struct {
	ID           string      `json:"id"`
	MoleculeID   string      `json:"molecule_id"`
	RootAtom     int         `json:"root_atom"`
	MaxSphere    int         `json:"max_sphere"`
	Excluded     []int       `json:"excluded,omitempty"`
	Placeholders bool        `json:"placeholders"`
	Atoms        []chem.Atom `json:"atoms"`
	Bonds        []chem.Bond `json:"bonds"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Graph rebuilds the fragment as an in-memory molecule graph.
func (f *Fragment) Graph() (*chem.Molecule, error) {
	return buildGraph(f.Atoms, f.Bonds)
}

// ExtractFragmentRequest is the payload for extracting a fragment from
// a stored molecule.
type ExtractFragmentRequest struct {
	RootAtom     int   `json:"root_atom"`
	MaxSphere    int   `json:"max_sphere"`
	Excluded     []int `json:"excluded,omitempty"`
	Placeholders bool  `json:"placeholders"`

	// Persist stores the result; otherwise extraction is ephemeral.
	Persist bool `json:"persist"`
}

// Validate checks extraction parameters that do not require the
// molecule itself. Root bounds are enforced by the fragmenter.
func (r *ExtractFragmentRequest) Validate() error {
	if r.RootAtom < 0 {
		return ErrRootOutOfRange
	}

	if r.MaxSphere < 0 {
		return ErrNegativeSphere
	}

	if r.MaxSphere > maxSphereLimit {
		return fmt.Errorf("max_sphere must be <= %d", maxSphereLimit)
	}

	return nil
}

// ExcludedSet converts the excluded index list into the set form the
// fragmenter consumes.
func (r *ExtractFragmentRequest) ExcludedSet() map[int]bool {
	if len(r.Excluded) == 0 {
		return nil
	}

	set := make(map[int]bool, len(r.Excluded))
	for _, idx := range r.Excluded {
		set[idx] = true
	}

	return set
}
