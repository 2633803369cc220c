package service

import (
	"context"
	"sync"

	"github.com/spectrakit/fragmentor/internal/models"
)

// mockMoleculeStore records calls and returns configured responses.
type mockMoleculeStore struct {
	mu    sync.Mutex
	calls []string

	createMolecule func(ctx context.Context, req models.CreateMoleculeRequest) (*models.Molecule, error)
	getMolecule    func(ctx context.Context, id string) (*models.Molecule, error)
	listMolecules  func(ctx context.Context, limit, offset int) ([]models.MoleculeSummary, bool, error)
	deleteMolecule func(ctx context.Context, id string) error
	countMolecules func(ctx context.Context) (int, error)
}

func (m *mockMoleculeStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockMoleculeStore) CreateMolecule(ctx context.Context, req models.CreateMoleculeRequest) (*models.Molecule, error) {
	m.record("CreateMolecule")
	return m.createMolecule(ctx, req)
}

func (m *mockMoleculeStore) GetMolecule(ctx context.Context, id string) (*models.Molecule, error) {
	m.record("GetMolecule")
	return m.getMolecule(ctx, id)
}

func (m *mockMoleculeStore) ListMolecules(ctx context.Context, limit, offset int) ([]models.MoleculeSummary, bool, error) {
	m.record("ListMolecules")
	return m.listMolecules(ctx, limit, offset)
}

func (m *mockMoleculeStore) DeleteMolecule(ctx context.Context, id string) error {
	m.record("DeleteMolecule")
	return m.deleteMolecule(ctx, id)
}

func (m *mockMoleculeStore) CountMolecules(ctx context.Context) (int, error) {
	m.record("CountMolecules")
	return m.countMolecules(ctx)
}

// mockFragmentStore records calls and returns configured responses.
type mockFragmentStore struct {
	mu    sync.Mutex
	calls []string

	createFragment func(ctx context.Context, f models.Fragment) (*models.Fragment, error)
	getFragment    func(ctx context.Context, id string) (*models.Fragment, error)
	listFragments  func(ctx context.Context, moleculeID string, limit, offset int) ([]models.Fragment, bool, error)
	deleteFragment func(ctx context.Context, id string) error
	countFragments func(ctx context.Context) (int, error)
}

func (m *mockFragmentStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockFragmentStore) CreateFragment(ctx context.Context, f models.Fragment) (*models.Fragment, error) {
	m.record("CreateFragment")
	return m.createFragment(ctx, f)
}

func (m *mockFragmentStore) GetFragment(ctx context.Context, id string) (*models.Fragment, error) {
	m.record("GetFragment")
	return m.getFragment(ctx, id)
}

func (m *mockFragmentStore) ListFragments(ctx context.Context, moleculeID string, limit, offset int) ([]models.Fragment, bool, error) {
	m.record("ListFragments")
	return m.listFragments(ctx, moleculeID, limit, offset)
}

func (m *mockFragmentStore) DeleteFragment(ctx context.Context, id string) error {
	m.record("DeleteFragment")
	return m.deleteFragment(ctx, id)
}

func (m *mockFragmentStore) CountFragments(ctx context.Context) (int, error) {
	m.record("CountFragments")
	return m.countFragments(ctx)
}

// mockSpectrumStore records calls and returns configured responses.
type mockSpectrumStore struct {
	mu    sync.Mutex
	calls []string

	createSpectrum func(ctx context.Context, sp models.Spectrum) (*models.Spectrum, error)
	getSpectrum    func(ctx context.Context, id string) (*models.Spectrum, error)
	listSpectra    func(ctx context.Context, moleculeID string, limit, offset int) ([]models.Spectrum, bool, error)
	deleteSpectrum func(ctx context.Context, id string) error
}

func (m *mockSpectrumStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockSpectrumStore) CreateSpectrum(ctx context.Context, sp models.Spectrum) (*models.Spectrum, error) {
	m.record("CreateSpectrum")
	return m.createSpectrum(ctx, sp)
}

func (m *mockSpectrumStore) GetSpectrum(ctx context.Context, id string) (*models.Spectrum, error) {
	m.record("GetSpectrum")
	return m.getSpectrum(ctx, id)
}

func (m *mockSpectrumStore) ListSpectra(ctx context.Context, moleculeID string, limit, offset int) ([]models.Spectrum, bool, error) {
	m.record("ListSpectra")
	return m.listSpectra(ctx, moleculeID, limit, offset)
}

func (m *mockSpectrumStore) DeleteSpectrum(ctx context.Context, id string) error {
	m.record("DeleteSpectrum")
	return m.deleteSpectrum(ctx, id)
}
