package api_test

import (
	"context"

	"github.com/spectrakit/fragmentor/internal/models"
	"github.com/spectrakit/fragmentor/internal/spectrum"
)

// mockMoleculeRepo implements api.MoleculeRepository for testing.
type mockMoleculeRepo struct {
	listFn   func(ctx context.Context, limit, offset int) ([]models.MoleculeSummary, bool, error)
	getFn    func(ctx context.Context, id string) (*models.Molecule, error)
	createFn func(ctx context.Context, req models.CreateMoleculeRequest) (*models.Molecule, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockMoleculeRepo) ListMolecules(ctx context.Context, limit, offset int) ([]models.MoleculeSummary, bool, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *mockMoleculeRepo) GetMolecule(ctx context.Context, id string) (*models.Molecule, error) {
	return m.getFn(ctx, id)
}

func (m *mockMoleculeRepo) CreateMolecule(ctx context.Context, req models.CreateMoleculeRequest) (*models.Molecule, error) {
	return m.createFn(ctx, req)
}

func (m *mockMoleculeRepo) DeleteMolecule(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockFragmentRepo implements api.FragmentRepository for testing.
type mockFragmentRepo struct {
	extractFn func(ctx context.Context, moleculeID string, req models.ExtractFragmentRequest) (*models.Fragment, error)
	getFn     func(ctx context.Context, id string) (*models.Fragment, error)
	listFn    func(ctx context.Context, moleculeID string, limit, offset int) ([]models.Fragment, bool, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockFragmentRepo) ExtractFragment(ctx context.Context, moleculeID string, req models.ExtractFragmentRequest) (*models.Fragment, error) {
	return m.extractFn(ctx, moleculeID, req)
}

func (m *mockFragmentRepo) GetFragment(ctx context.Context, id string) (*models.Fragment, error) {
	return m.getFn(ctx, id)
}

func (m *mockFragmentRepo) ListFragments(ctx context.Context, moleculeID string, limit, offset int) ([]models.Fragment, bool, error) {
	return m.listFn(ctx, moleculeID, limit, offset)
}

func (m *mockFragmentRepo) DeleteFragment(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockSpectrumRepo implements api.SpectrumRepository for testing.
type mockSpectrumRepo struct {
	createFn func(ctx context.Context, moleculeID string, req models.CreateSpectrumRequest) (*models.Spectrum, error)
	getFn    func(ctx context.Context, id string) (*models.Spectrum, error)
	listFn   func(ctx context.Context, moleculeID string, limit, offset int) ([]models.Spectrum, bool, error)
	deleteFn func(ctx context.Context, id string) error
	pickFn   func(ctx context.Context, id string, req models.PickRequest) ([]spectrum.Signal, error)
}

func (m *mockSpectrumRepo) CreateSpectrum(ctx context.Context, moleculeID string, req models.CreateSpectrumRequest) (*models.Spectrum, error) {
	return m.createFn(ctx, moleculeID, req)
}

func (m *mockSpectrumRepo) GetSpectrum(ctx context.Context, id string) (*models.Spectrum, error) {
	return m.getFn(ctx, id)
}

func (m *mockSpectrumRepo) ListSpectra(ctx context.Context, moleculeID string, limit, offset int) ([]models.Spectrum, bool, error) {
	return m.listFn(ctx, moleculeID, limit, offset)
}

func (m *mockSpectrumRepo) DeleteSpectrum(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockSpectrumRepo) PickSignals(ctx context.Context, id string, req models.PickRequest) ([]spectrum.Signal, error) {
	return m.pickFn(ctx, id, req)
}
