package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/spectrakit/fragmentor/internal/domain"
	"github.com/spectrakit/fragmentor/internal/fragment"
	"github.com/spectrakit/fragmentor/internal/metrics"
	"github.com/spectrakit/fragmentor/internal/models"
)

// FragmentStore is the data-access interface FragmentService depends on.
type FragmentStore interface {
	CreateFragment(ctx context.Context, f models.Fragment) (*models.Fragment, error)
	GetFragment(ctx context.Context, id string) (*models.Fragment, error)
	ListFragments(ctx context.Context, moleculeID string, limit, offset int) ([]models.Fragment, bool, error)
	DeleteFragment(ctx context.Context, id string) error
	CountFragments(ctx context.Context) (int, error)
}

// Compile-time check: *FragmentService must satisfy domain.FragmentService.
var _ domain.FragmentService = (*FragmentService)(nil)

// FragmentService runs fragment extractions against stored molecules
// and optionally persists the results.
type FragmentService struct {
	store     FragmentStore
	molecules MoleculeStore
	log       *logrus.Logger
}

// NewFragmentService creates a FragmentService.
func NewFragmentService(store FragmentStore, molecules MoleculeStore, log *logrus.Logger) *FragmentService {
	return &FragmentService{store: store, molecules: molecules, log: log}
}

// ExtractFragment loads the molecule, runs the fragmenter, and persists
// the result when the request asks for it. Ephemeral extractions get a
// fresh ID but are never stored.
func (s *FragmentService) ExtractFragment(ctx context.Context, moleculeID string, req models.ExtractFragmentRequest) (*models.Fragment, error) {
	mol, err := s.molecules.GetMolecule(ctx, moleculeID)
	if err != nil {
		return nil, err
	}

	g, err := mol.Graph()
	if err != nil {
		return nil, err
	}

	start := time.Now()

	sub, err := fragment.BuildFragment(g, req.RootAtom, req.MaxSphere, req.ExcludedSet(), req.Placeholders)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues("error").Inc()

		return nil, mapFragmentErr(err)
	}

	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	metrics.ExtractionsTotal.WithLabelValues("ok").Inc()

	atoms, bonds := models.FromGraph(sub)

	f := models.Fragment{
		ID:           uuid.New().String(),
		MoleculeID:   moleculeID,
		RootAtom:     req.RootAtom,
		MaxSphere:    req.MaxSphere,
		Excluded:     req.Excluded,
		Placeholders: req.Placeholders,
		Atoms:        atoms,
		Bonds:        bonds,
		CreatedAt:    time.Now().UTC(),
	}

	s.log.WithFields(logrus.Fields{
		"molecule_id": moleculeID,
		"root_atom":   req.RootAtom,
		"max_sphere":  req.MaxSphere,
		"atoms":       len(atoms),
		"persist":     req.Persist,
	}).Info("fragment extracted")

	if !req.Persist {
		return &f, nil
	}

	return s.store.CreateFragment(ctx, f)
}

// GetFragment returns a persisted fragment by ID (pass-through).
func (s *FragmentService) GetFragment(ctx context.Context, id string) (*models.Fragment, error) {
	return s.store.GetFragment(ctx, id)
}

// ListFragments returns the persisted fragments of a molecule (pass-through).
func (s *FragmentService) ListFragments(ctx context.Context, moleculeID string, limit, offset int) ([]models.Fragment, bool, error) {
	return s.store.ListFragments(ctx, moleculeID, limit, offset)
}

// DeleteFragment removes a persisted fragment (pass-through).
func (s *FragmentService) DeleteFragment(ctx context.Context, id string) error {
	return s.store.DeleteFragment(ctx, id)
}

// mapFragmentErr translates fragmenter sentinels into the request
// validation errors the API layer reports.
func mapFragmentErr(err error) error {
	switch {
	case errors.Is(err, fragment.ErrRootOutOfRange):
		return models.ErrRootOutOfRange
	case errors.Is(err, fragment.ErrRootExcluded):
		return models.ErrRootExcluded
	case errors.Is(err, fragment.ErrNegativeSphere):
		return models.ErrNegativeSphere
	default:
		return err
	}
}
