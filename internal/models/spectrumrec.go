package models

import (
	"time"

	"github.com/spectrakit/fragmentor/internal/spectrum"
)

// Spectrum is a stored NMR spectrum attached to a molecule.
type Spectrum struct {
	ID         string            `json:"id"`
	MoleculeID string            `json:"molecule_id"`
	Name       string            `json:"name"`
	Experiment string            `json:"experiment,omitempty"`
	Nuclei     []string          `json:"nuclei"`
	Frequency  float64           `json:"frequency_mhz,omitempty"`
	Solvent    string            `json:"solvent,omitempty"`
	Standard   string            `json:"standard,omitempty"`
	Signals    []spectrum.Signal `json:"signals"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Model rebuilds the in-memory spectrum from the stored record.
func (s *Spectrum) Model() (*spectrum.Spectrum, error) {
	sp, err := spectrum.New(s.Name, s.Nuclei)
	if err != nil {
		return nil, err
	}

	sp.Experiment = s.Experiment
	sp.Frequency = s.Frequency
	sp.Solvent = s.Solvent
	sp.Standard = s.Standard

	for _, sig := range s.Signals {
		if err := sp.AddSignal(sig); err != nil {
			return nil, err
		}
	}

	return sp, nil
}

// CreateSpectrumRequest is the payload for storing a new spectrum.
// Either Nuclei or a known Experiment type must be given; a known
// Experiment fills the nuclei when they are omitted.
type CreateSpectrumRequest struct {
	Name       string            `json:"name"`
	Experiment string            `json:"experiment,omitempty"`
	Nuclei     []string          `json:"nuclei,omitempty"`
	Frequency  float64           `json:"frequency_mhz,omitempty"`
	Solvent    string            `json:"solvent,omitempty"`
	Standard   string            `json:"standard,omitempty"`
	Signals    []spectrum.Signal `json:"signals,omitempty"`
}

// Validate checks required fields and signal dimensions, resolving the
// nuclei from the experiment type when necessary.
func (r *CreateSpectrumRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	if len(r.Nuclei) == 0 {
		nuclei, ok := spectrum.ExperimentNuclei(r.Experiment)
		if !ok {
			return ErrMissingNuclei
		}

		r.Nuclei = nuclei
	}

	// Building the model validates every signal's dimension.
	rec := Spectrum{
		Name:    r.Name,
		Nuclei:  r.Nuclei,
		Signals: r.Signals,
	}
	if _, err := rec.Model(); err != nil {
		return err
	}

	return nil
}

// PickRequest selects signals from a stored spectrum by chemical shift.
type PickRequest struct {
	Shift     float64 `json:"shift"`
	Nucleus   string  `json:"nucleus"`
	Tolerance float64 `json:"tolerance"`

	// Closest restricts the result to the single nearest signal.
	Closest bool `json:"closest"`
}

// Validate checks pick parameters.
func (r *PickRequest) Validate() error {
	if r.Nucleus == "" {
		return ErrMissingNucleus
	}

	if r.Tolerance <= 0 {
		return ErrBadTolerance
	}

	return nil
}
