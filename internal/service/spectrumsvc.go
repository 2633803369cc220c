package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/spectrakit/fragmentor/internal/domain"
	"github.com/spectrakit/fragmentor/internal/models"
	"github.com/spectrakit/fragmentor/internal/spectrum"
)

// SpectrumStore is the data-access interface SpectrumService depends on.
type SpectrumStore interface {
	CreateSpectrum(ctx context.Context, sp models.Spectrum) (*models.Spectrum, error)
	GetSpectrum(ctx context.Context, id string) (*models.Spectrum, error)
	ListSpectra(ctx context.Context, moleculeID string, limit, offset int) ([]models.Spectrum, bool, error)
	DeleteSpectrum(ctx context.Context, id string) error
}

// Compile-time check: *SpectrumService must satisfy domain.SpectrumService.
var _ domain.SpectrumService = (*SpectrumService)(nil)

// SpectrumService handles spectrum storage and peak picking.
type SpectrumService struct {
	store SpectrumStore
	log   *logrus.Logger
}

// NewSpectrumService creates a SpectrumService.
func NewSpectrumService(store SpectrumStore, log *logrus.Logger) *SpectrumService {
	return &SpectrumService{store: store, log: log}
}

// CreateSpectrum stores a spectrum for a molecule.
func (s *SpectrumService) CreateSpectrum(ctx context.Context, moleculeID string, req models.CreateSpectrumRequest) (*models.Spectrum, error) {
	sp := models.Spectrum{
		ID:         uuid.New().String(),
		MoleculeID: moleculeID,
		Name:       req.Name,
		Experiment: req.Experiment,
		Nuclei:     req.Nuclei,
		Frequency:  req.Frequency,
		Solvent:    req.Solvent,
		Standard:   req.Standard,
		Signals:    req.Signals,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.store.CreateSpectrum(ctx, sp)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"spectrum_id": created.ID,
		"molecule_id": moleculeID,
		"signals":     len(created.Signals),
	}).Info("spectrum stored")

	return created, nil
}

// GetSpectrum returns a stored spectrum by ID (pass-through).
func (s *SpectrumService) GetSpectrum(ctx context.Context, id string) (*models.Spectrum, error) {
	return s.store.GetSpectrum(ctx, id)
}

// ListSpectra returns the spectra of a molecule (pass-through).
func (s *SpectrumService) ListSpectra(ctx context.Context, moleculeID string, limit, offset int) ([]models.Spectrum, bool, error) {
	return s.store.ListSpectra(ctx, moleculeID, limit, offset)
}

// DeleteSpectrum removes a stored spectrum (pass-through).
func (s *SpectrumService) DeleteSpectrum(ctx context.Context, id string) error {
	return s.store.DeleteSpectrum(ctx, id)
}

// PickSignals selects signals from a stored spectrum by chemical shift
// along the requested nucleus axis.
func (s *SpectrumService) PickSignals(ctx context.Context, id string, req models.PickRequest) ([]spectrum.Signal, error) {
	rec, err := s.store.GetSpectrum(ctx, id)
	if err != nil {
		return nil, err
	}

	sp, err := rec.Model()
	if err != nil {
		return nil, err
	}

	if req.Closest {
		sig, ok := sp.PickClosest(req.Shift, req.Nucleus, req.Tolerance)
		if !ok {
			return []spectrum.Signal{}, nil
		}

		return []spectrum.Signal{sig}, nil
	}

	return sp.Pick(req.Shift, req.Nucleus, req.Tolerance), nil
}
