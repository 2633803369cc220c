// Package spectrum models n-dimensional NMR spectra whose signals are
// correlated with molecular fragments.
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Standard nucleus labels for spectrum axes.
const (
	NucleusProton     = "1H"
	NucleusCarbon     = "13C"
	NucleusNitrogen   = "15N"
	NucleusPhosphorus = "31P"
)

// experimentNuclei is the fixed axis layout per experiment type.
var experimentNuclei = map[string][]string{
	"BB":     {NucleusCarbon},
	"DEPT":   {NucleusCarbon},
	"HSQC":   {NucleusProton, NucleusCarbon},
	"HMQC":   {NucleusProton, NucleusCarbon},
	"HMBC":   {NucleusProton, NucleusCarbon},
	"NHCORR": {NucleusProton, NucleusNitrogen},
	"COSY":   {NucleusProton, NucleusProton},
	"NOESY":  {NucleusProton, NucleusProton},
}

// ExperimentNuclei returns the axis nuclei of a standard experiment
// type. The returned slice is a copy.
func ExperimentNuclei(experiment string) ([]string, bool) {
	nuclei, ok := experimentNuclei[experiment]
	if !ok {
		return nil, false
	}

	out := make([]string, len(nuclei))
	copy(out, nuclei)

	return out, true
}

// Sentinel errors for spectrum construction.
var (
	ErrNoNuclei          = errors.New("spectrum needs at least one axis nucleus")
	ErrDimensionMismatch = errors.New("signal dimension does not match spectrum axes")
)

// Signal is a single n-dimensional peak: one chemical shift per axis.
type Signal struct {
	Shifts    []float64 `json:"shifts"`
	Intensity float64   `json:"intensity,omitempty"`
}

// Spectrum is an n-dimensional NMR spectrum. The axis count is fixed by
// the nuclei it is created with; every signal carries one shift per axis.
type Spectrum struct {
	Name       string   `json:"name"`
	Experiment string   `json:"experiment,omitempty"`
	Nuclei     []string `json:"nuclei"`
	Frequency  float64  `json:"frequency_mhz,omitempty"`
	Solvent    string   `json:"solvent,omitempty"`
	Standard   string   `json:"standard,omitempty"`
	Signals    []Signal `json:"signals"`
}

// New creates an empty spectrum with the given axis nuclei.
func New(name string, nuclei []string) (*Spectrum, error) {
	if len(nuclei) == 0 {
		return nil, ErrNoNuclei
	}

	axes := make([]string, len(nuclei))
	copy(axes, nuclei)

	return &Spectrum{Name: name, Nuclei: axes}, nil
}

// Dim returns the number of axes.
func (s *Spectrum) Dim() int { return len(s.Nuclei) }

// AddSignal appends a signal, enforcing the axis count.
func (s *Spectrum) AddSignal(sig Signal) error {
	if len(sig.Shifts) != s.Dim() {
		return fmt.Errorf("%w: got %d shifts, want %d", ErrDimensionMismatch, len(sig.Shifts), s.Dim())
	}

	s.Signals = append(s.Signals, sig)

	return nil
}

// axisOf returns the first axis recorded for the given nucleus.
func (s *Spectrum) axisOf(nucleus string) (int, bool) {
	for i, n := range s.Nuclei {
		if n == nucleus {
			return i, true
		}
	}

	return 0, false
}

// ShiftList returns the unique shifts observed on the given axis,
// sorted from highest to lowest.
func (s *Spectrum) ShiftList(axis int) []float64 {
	if axis < 0 || axis >= s.Dim() {
		return nil
	}

	seen := make(map[float64]bool)

	var shifts []float64

	for _, sig := range s.Signals {
		v := sig.Shifts[axis]
		if !seen[v] {
			seen[v] = true
			shifts = append(shifts, v)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(shifts)))

	return shifts
}

// PickClosest returns the signal whose shift on the given nucleus axis
// is nearest to shift, provided it lies within tolerance.
func (s *Spectrum) PickClosest(shift float64, nucleus string, tolerance float64) (Signal, bool) {
	axis, ok := s.axisOf(nucleus)
	if !ok {
		return Signal{}, false
	}

	best := -1
	bestDiff := math.MaxFloat64

	for i, sig := range s.Signals {
		diff := math.Abs(sig.Shifts[axis] - shift)
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}

	if best < 0 || bestDiff > tolerance {
		return Signal{}, false
	}

	return s.Signals[best], true
}

// Pick returns every signal whose shift on the given nucleus axis lies
// within tolerance of shift. The result is empty, never nil, when the
// nucleus is known but nothing matches.
func (s *Spectrum) Pick(shift float64, nucleus string, tolerance float64) []Signal {
	axis, ok := s.axisOf(nucleus)
	if !ok {
		return nil
	}

	picked := make([]Signal, 0)

	for _, sig := range s.Signals {
		if math.Abs(sig.Shifts[axis]-shift) <= tolerance {
			picked = append(picked, sig)
		}
	}

	return picked
}
