// Package service provides business logic between API handlers and data stores.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/spectrakit/fragmentor/internal/domain"
	"github.com/spectrakit/fragmentor/internal/models"
)

// MoleculeStore is the data-access interface MoleculeService depends on.
type MoleculeStore interface {
	CreateMolecule(ctx context.Context, req models.CreateMoleculeRequest) (*models.Molecule, error)
	GetMolecule(ctx context.Context, id string) (*models.Molecule, error)
	ListMolecules(ctx context.Context, limit, offset int) ([]models.MoleculeSummary, bool, error)
	DeleteMolecule(ctx context.Context, id string) error
	CountMolecules(ctx context.Context) (int, error)
}

// Compile-time check: *MoleculeService must satisfy domain.MoleculeService.
var _ domain.MoleculeService = (*MoleculeService)(nil)

// MoleculeService wraps MoleculeStore with logging.
type MoleculeService struct {
	store MoleculeStore
	log   *logrus.Logger
}

// NewMoleculeService creates a MoleculeService.
func NewMoleculeService(store MoleculeStore, log *logrus.Logger) *MoleculeService {
	return &MoleculeService{store: store, log: log}
}

// ListMolecules returns a paginated list of molecule summaries (pass-through).
func (s *MoleculeService) ListMolecules(ctx context.Context, limit, offset int) ([]models.MoleculeSummary, bool, error) {
	return s.store.ListMolecules(ctx, limit, offset)
}

// GetMolecule returns a single molecule by ID (pass-through).
func (s *MoleculeService) GetMolecule(ctx context.Context, id string) (*models.Molecule, error) {
	return s.store.GetMolecule(ctx, id)
}

// CreateMolecule stores a new molecule.
func (s *MoleculeService) CreateMolecule(ctx context.Context, req models.CreateMoleculeRequest) (*models.Molecule, error) {
	m, err := s.store.CreateMolecule(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"molecule_id": m.ID,
		"atoms":       len(m.Atoms),
		"bonds":       len(m.Bonds),
	}).Info("molecule created")

	return m, nil
}

// DeleteMolecule removes a molecule with its fragments and spectra.
func (s *MoleculeService) DeleteMolecule(ctx context.Context, id string) error {
	if err := s.store.DeleteMolecule(ctx, id); err != nil {
		return err
	}

	s.log.WithField("molecule_id", id).Info("molecule deleted")

	return nil
}
