package models_test

import (
	"errors"
	"testing"

	"github.com/spectrakit/fragmentor/internal/chem"
	"github.com/spectrakit/fragmentor/internal/models"
	"github.com/spectrakit/fragmentor/internal/spectrum"
)

func validMoleculeRequest() models.CreateMoleculeRequest {
	return models.CreateMoleculeRequest{
		Name: "ethanol",
		Atoms: []chem.Atom{
			{Index: 0, Element: "C"},
			{Index: 1, Element: "C"},
			{Index: 2, Element: "O"},
		},
		Bonds: []chem.Bond{
			{From: 0, To: 1, Order: 1},
			{From: 1, To: 2, Order: 1},
		},
	}
}

func TestCreateMoleculeRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*models.CreateMoleculeRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.CreateMoleculeRequest) {}},
		{
			name:    "missing name",
			mutate:  func(r *models.CreateMoleculeRequest) { r.Name = "" },
			wantErr: models.ErrMissingName,
		},
		{
			name:    "no atoms",
			mutate:  func(r *models.CreateMoleculeRequest) { r.Atoms = nil },
			wantErr: models.ErrNoAtoms,
		},
		{
			name:    "empty element",
			mutate:  func(r *models.CreateMoleculeRequest) { r.Atoms[0].Element = "" },
			wantErr: models.ErrMissingElement,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validMoleculeRequest()
			tc.mutate(&req)

			err := req.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				if req.ID == "" {
					t.Error("expected auto-generated ID")
				}

				return
			}

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateMoleculeRequest_RejectsBadBonds(t *testing.T) {
	t.Parallel()

	req := validMoleculeRequest()
	req.Bonds = append(req.Bonds, chem.Bond{From: 0, To: 9, Order: 1})

	if err := req.Validate(); err == nil {
		t.Error("expected out-of-range bond to be rejected")
	}

	req = validMoleculeRequest()
	req.Bonds = append(req.Bonds, chem.Bond{From: 1, To: 0, Order: 2})

	if err := req.Validate(); err == nil {
		t.Error("expected duplicate bond to be rejected")
	}
}

func TestMolecule_GraphRoundTrip(t *testing.T) {
	t.Parallel()

	rec := models.Molecule{
		ID:    "m1",
		Name:  "cyclopropane",
		Atoms: []chem.Atom{{Index: 0, Element: "C"}, {Index: 1, Element: "C"}, {Index: 2, Element: "C"}},
		Bonds: []chem.Bond{
			{From: 0, To: 1, Order: 1, InRing: true},
			{From: 1, To: 2, Order: 1, InRing: true},
			{From: 2, To: 0, Order: 1, InRing: true},
		},
	}

	g, err := rec.Graph()
	if err != nil {
		t.Fatalf("graph: %v", err)
	}

	if g.AtomCount() != 3 || g.BondCount() != 3 {
		t.Fatalf("graph has %d atoms / %d bonds, want 3 / 3", g.AtomCount(), g.BondCount())
	}

	atoms, bonds := models.FromGraph(g)
	if len(atoms) != 3 || len(bonds) != 3 {
		t.Errorf("round trip gave %d atoms / %d bonds", len(atoms), len(bonds))
	}
}

func TestExtractFragmentRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     models.ExtractFragmentRequest
		wantErr bool
	}{
		{name: "valid", req: models.ExtractFragmentRequest{RootAtom: 0, MaxSphere: 2}},
		{name: "negative root", req: models.ExtractFragmentRequest{RootAtom: -1, MaxSphere: 2}, wantErr: true},
		{name: "negative sphere", req: models.ExtractFragmentRequest{RootAtom: 0, MaxSphere: -1}, wantErr: true},
		{name: "sphere over limit", req: models.ExtractFragmentRequest{RootAtom: 0, MaxSphere: 33}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestExtractFragmentRequest_ExcludedSet(t *testing.T) {
	t.Parallel()

	req := models.ExtractFragmentRequest{Excluded: []int{3, 5}}

	set := req.ExcludedSet()
	if !set[3] || !set[5] || set[0] {
		t.Errorf("unexpected excluded set: %v", set)
	}

	if (&models.ExtractFragmentRequest{}).ExcludedSet() != nil {
		t.Error("empty exclusion list should give a nil set")
	}
}

func TestCreateSpectrumRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     models.CreateSpectrumRequest
		wantErr bool
	}{
		{
			name: "explicit nuclei",
			req: models.CreateSpectrumRequest{
				Name:    "bb-13c",
				Nuclei:  []string{spectrum.NucleusCarbon},
				Signals: []spectrum.Signal{{Shifts: []float64{128.5}}},
			},
		},
		{
			name: "nuclei resolved from experiment",
			req:  models.CreateSpectrumRequest{Name: "hsqc", Experiment: "HSQC"},
		},
		{
			name:    "unknown experiment without nuclei",
			req:     models.CreateSpectrumRequest{Name: "mystery", Experiment: "XYZ"},
			wantErr: true,
		},
		{
			name:    "missing name",
			req:     models.CreateSpectrumRequest{Nuclei: []string{spectrum.NucleusProton}},
			wantErr: true,
		},
		{
			name: "signal dimension mismatch",
			req: models.CreateSpectrumRequest{
				Name:    "hsqc",
				Experiment: "HSQC",
				Signals: []spectrum.Signal{{Shifts: []float64{7.2}}},
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req

			err := req.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}

			if err == nil && len(req.Nuclei) == 0 {
				t.Error("expected nuclei to be resolved")
			}
		})
	}
}
