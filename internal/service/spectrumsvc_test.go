package service

import (
	"context"
	"math"
	"testing"

	"github.com/spectrakit/fragmentor/internal/models"
	"github.com/spectrakit/fragmentor/internal/spectrum"
)

func storedCarbonSpectrum() *models.Spectrum {
	return &models.Spectrum{
		ID:         "sp-1",
		MoleculeID: "mol-1",
		Name:       "13C reference",
		Experiment: "BB",
		Nuclei:     []string{spectrum.NucleusCarbon},
		Signals: []spectrum.Signal{
			{Shifts: []float64{128.5}, Intensity: 2},
			{Shifts: []float64{128.9}, Intensity: 1},
			{Shifts: []float64{77.1}, Intensity: 1},
		},
	}
}

func TestSpectrumService_CreateSpectrum(t *testing.T) {
	store := &mockSpectrumStore{
		createSpectrum: func(_ context.Context, sp models.Spectrum) (*models.Spectrum, error) {
			return &sp, nil
		},
	}
	svc := NewSpectrumService(store, testLogger())

	req := models.CreateSpectrumRequest{Name: "13C reference", Experiment: "BB"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	sp, err := svc.CreateSpectrum(context.Background(), "mol-9", req)
	if err != nil {
		t.Fatalf("CreateSpectrum: %v", err)
	}

	if sp.ID == "" {
		t.Error("spectrum ID is empty")
	}
	if sp.MoleculeID != "mol-9" {
		t.Errorf("MoleculeID = %q, want %q", sp.MoleculeID, "mol-9")
	}
	if len(sp.Nuclei) != 1 || sp.Nuclei[0] != spectrum.NucleusCarbon {
		t.Errorf("Nuclei = %v, want [%s]", sp.Nuclei, spectrum.NucleusCarbon)
	}
}

func TestSpectrumService_PickSignals(t *testing.T) {
	store := &mockSpectrumStore{
		getSpectrum: func(_ context.Context, _ string) (*models.Spectrum, error) {
			return storedCarbonSpectrum(), nil
		},
	}
	svc := NewSpectrumService(store, testLogger())

	tests := []struct {
		name string
		req  models.PickRequest
		want int
	}{
		{
			name: "window catches aromatic pair",
			req:  models.PickRequest{Shift: 128.7, Nucleus: spectrum.NucleusCarbon, Tolerance: 0.5},
			want: 2,
		},
		{
			name: "closest picks a single signal",
			req:  models.PickRequest{Shift: 128.7, Nucleus: spectrum.NucleusCarbon, Tolerance: 0.5, Closest: true},
			want: 1,
		},
		{
			name: "nothing in window",
			req:  models.PickRequest{Shift: 200, Nucleus: spectrum.NucleusCarbon, Tolerance: 1},
			want: 0,
		},
		{
			name: "unknown nucleus axis",
			req:  models.PickRequest{Shift: 128.7, Nucleus: spectrum.NucleusProton, Tolerance: 0.5},
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			signals, err := svc.PickSignals(context.Background(), "sp-1", tc.req)
			if err != nil {
				t.Fatalf("PickSignals: %v", err)
			}

			if len(signals) != tc.want {
				t.Errorf("len(signals) = %d, want %d", len(signals), tc.want)
			}
		})
	}
}

func TestSpectrumService_PickClosestNearest(t *testing.T) {
	store := &mockSpectrumStore{
		getSpectrum: func(_ context.Context, _ string) (*models.Spectrum, error) {
			return storedCarbonSpectrum(), nil
		},
	}
	svc := NewSpectrumService(store, testLogger())

	req := models.PickRequest{Shift: 128.6, Nucleus: spectrum.NucleusCarbon, Tolerance: 1, Closest: true}

	signals, err := svc.PickSignals(context.Background(), "sp-1", req)
	if err != nil {
		t.Fatalf("PickSignals: %v", err)
	}

	if len(signals) != 1 {
		t.Fatalf("len(signals) = %d, want 1", len(signals))
	}
	if math.Abs(signals[0].Shifts[0]-128.5) > 1e-9 {
		t.Errorf("Shifts[0] = %v, want 128.5", signals[0].Shifts[0])
	}
}
