package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/spectrakit/fragmentor/internal/chem"
	"github.com/spectrakit/fragmentor/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

// propanol is a C-C-C-O chain with unit bond orders.
func propanol() *models.Molecule {
	return &models.Molecule{
		ID:   "mol-1",
		Name: "1-propanol",
		Atoms: []chem.Atom{
			{Index: 0, Element: "C"},
			{Index: 1, Element: "C"},
			{Index: 2, Element: "C"},
			{Index: 3, Element: "O"},
		},
		Bonds: []chem.Bond{
			{From: 0, To: 1, Order: 1},
			{From: 1, To: 2, Order: 1},
			{From: 2, To: 3, Order: 1},
		},
	}
}

func TestFragmentService_ExtractEphemeral(t *testing.T) {
	molecules := &mockMoleculeStore{
		getMolecule: func(_ context.Context, id string) (*models.Molecule, error) {
			if id != "mol-1" {
				return nil, models.ErrMoleculeNotFound
			}
			return propanol(), nil
		},
	}
	fragments := &mockFragmentStore{}
	svc := NewFragmentService(fragments, molecules, testLogger())

	req := models.ExtractFragmentRequest{RootAtom: 0, MaxSphere: 1}

	f, err := svc.ExtractFragment(context.Background(), "mol-1", req)
	if err != nil {
		t.Fatalf("ExtractFragment: %v", err)
	}

	if f.ID == "" {
		t.Error("fragment ID is empty")
	}
	if f.MoleculeID != "mol-1" {
		t.Errorf("MoleculeID = %q, want %q", f.MoleculeID, "mol-1")
	}
	// Depth 1 from atom 0 reaches only atom 1.
	if len(f.Atoms) != 2 {
		t.Errorf("len(Atoms) = %d, want 2", len(f.Atoms))
	}
	if len(fragments.calls) != 0 {
		t.Errorf("fragment store calls = %v, want none for ephemeral extraction", fragments.calls)
	}
}

func TestFragmentService_ExtractPersist(t *testing.T) {
	molecules := &mockMoleculeStore{
		getMolecule: func(_ context.Context, _ string) (*models.Molecule, error) {
			return propanol(), nil
		},
	}
	fragments := &mockFragmentStore{
		createFragment: func(_ context.Context, f models.Fragment) (*models.Fragment, error) {
			return &f, nil
		},
	}
	svc := NewFragmentService(fragments, molecules, testLogger())

	req := models.ExtractFragmentRequest{RootAtom: 3, MaxSphere: 2, Persist: true}

	f, err := svc.ExtractFragment(context.Background(), "mol-1", req)
	if err != nil {
		t.Fatalf("ExtractFragment: %v", err)
	}

	// Depth 2 from the oxygen reaches atoms 3, 2, 1.
	if len(f.Atoms) != 3 {
		t.Errorf("len(Atoms) = %d, want 3", len(f.Atoms))
	}
	if len(fragments.calls) != 1 || fragments.calls[0] != "CreateFragment" {
		t.Errorf("fragment store calls = %v, want [CreateFragment]", fragments.calls)
	}
}

func TestFragmentService_ExtractErrors(t *testing.T) {
	tests := []struct {
		name       string
		moleculeID string
		req        models.ExtractFragmentRequest
		wantErr    error
	}{
		{
			name:       "molecule missing",
			moleculeID: "nope",
			req:        models.ExtractFragmentRequest{RootAtom: 0, MaxSphere: 1},
			wantErr:    models.ErrMoleculeNotFound,
		},
		{
			name:       "root out of range",
			moleculeID: "mol-1",
			req:        models.ExtractFragmentRequest{RootAtom: 99, MaxSphere: 1},
			wantErr:    models.ErrRootOutOfRange,
		},
		{
			name:       "root excluded",
			moleculeID: "mol-1",
			req:        models.ExtractFragmentRequest{RootAtom: 0, MaxSphere: 1, Excluded: []int{0}},
			wantErr:    models.ErrRootExcluded,
		},
	}

	molecules := &mockMoleculeStore{
		getMolecule: func(_ context.Context, id string) (*models.Molecule, error) {
			if id != "mol-1" {
				return nil, models.ErrMoleculeNotFound
			}
			return propanol(), nil
		},
	}
	svc := NewFragmentService(&mockFragmentStore{}, molecules, testLogger())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ExtractFragment(context.Background(), tc.moleculeID, tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestStatsService(t *testing.T) {
	molecules := &mockMoleculeStore{
		countMolecules: func(_ context.Context) (int, error) { return 7, nil },
	}
	fragments := &mockFragmentStore{
		countFragments: func(_ context.Context) (int, error) { return 3, nil },
	}
	svc := NewStatsService(molecules, fragments, testLogger())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.Molecules != 7 || stats.Fragments != 3 {
		t.Errorf("stats = %+v, want 7 molecules, 3 fragments", stats)
	}
}
