package client

import "time"

// Atom is a single atom in a molecular graph.
type Atom struct {
	Index   int    `json:"index"`
	Element string `json:"element"`
}

// Bond is an undirected edge between two atoms.
type Bond struct {
	From     int  `json:"from"`
	To       int  `json:"to"`
	Order    int  `json:"order"`
	InRing   bool `json:"in_ring"`
	Aromatic bool `json:"aromatic"`
}

// Molecule is a stored molecular graph.
type Molecule struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Atoms     []Atom    `json:"atoms"`
	Bonds     []Bond    `json:"bonds"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoleculeSummary is the lightweight list representation of a molecule.
type MoleculeSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AtomCount int       `json:"atom_count"`
	BondCount int       `json:"bond_count"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMoleculeRequest is the payload for creating a molecule.
type CreateMoleculeRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Atoms []Atom `json:"atoms"`
	Bonds []Bond `json:"bonds"`
}

// Fragment is an extracted substructure of a molecule.
type Fragment struct {
	ID           string    `json:"id"`
	MoleculeID   string    `json:"molecule_id"`
	RootAtom     int       `json:"root_atom"`
	MaxSphere    int       `json:"max_sphere"`
	Excluded     []int     `json:"excluded,omitempty"`
	Placeholders bool      `json:"placeholders"`
	Atoms        []Atom    `json:"atoms"`
	Bonds        []Bond    `json:"bonds"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExtractFragmentRequest is the payload for fragment extraction.
type ExtractFragmentRequest struct {
	RootAtom     int   `json:"root_atom"`
	MaxSphere    int   `json:"max_sphere"`
	Excluded     []int `json:"excluded,omitempty"`
	Placeholders bool  `json:"placeholders"`

	// Persist stores the fragment; when false the server extracts and
	// returns it without writing a row.
	Persist bool `json:"persist"`
}

// Signal is one peak (or group of correlated peaks) in a spectrum.
type Signal struct {
	Shifts    []float64 `json:"shifts"`
	Intensity float64   `json:"intensity,omitempty"`
}

// Spectrum is a stored NMR spectrum attached to a molecule.
type Spectrum struct {
	ID         string    `json:"id"`
	MoleculeID string    `json:"molecule_id"`
	Name       string    `json:"name"`
	Experiment string    `json:"experiment,omitempty"`
	Nuclei     []string  `json:"nuclei"`
	Frequency  float64   `json:"frequency_mhz,omitempty"`
	Solvent    string    `json:"solvent,omitempty"`
	Standard   string    `json:"standard,omitempty"`
	Signals    []Signal  `json:"signals"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateSpectrumRequest is the payload for recording a spectrum. When
// Experiment names a known experiment type the server resolves Nuclei
// from it.
type CreateSpectrumRequest struct {
	Name       string   `json:"name"`
	Experiment string   `json:"experiment,omitempty"`
	Nuclei     []string `json:"nuclei,omitempty"`
	Frequency  float64  `json:"frequency_mhz,omitempty"`
	Solvent    string   `json:"solvent,omitempty"`
	Standard   string   `json:"standard,omitempty"`
	Signals    []Signal `json:"signals,omitempty"`
}

// PickRequest selects signals near a chemical shift on one nucleus axis.
type PickRequest struct {
	Shift     float64 `json:"shift"`
	Nucleus   string  `json:"nucleus"`
	Tolerance float64 `json:"tolerance"`
	Closest   bool    `json:"closest"`
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// StatsResponse holds aggregate entity counts.
type StatsResponse struct {
	Molecules int `json:"molecules"`
	Fragments int `json:"fragments"`
}
