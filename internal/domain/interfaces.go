// Package domain defines the canonical service interfaces shared across
// API layers (REST handlers, client). Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/spectrakit/fragmentor/internal/models"
	"github.com/spectrakit/fragmentor/internal/spectrum"
)

// MoleculeService defines all molecule operations.
type MoleculeService interface {
	ListMolecules(ctx context.Context, limit, offset int) ([]models.MoleculeSummary, bool, error)
	GetMolecule(ctx context.Context, id string) (*models.Molecule, error)
	CreateMolecule(ctx context.Context, req models.CreateMoleculeRequest) (*models.Molecule, error)
	DeleteMolecule(ctx context.Context, id string) error
}

// FragmentService defines fragment extraction and retrieval operations.
type FragmentService interface {
	ExtractFragment(ctx context.Context, moleculeID string, req models.ExtractFragmentRequest) (*models.Fragment, error)
	GetFragment(ctx context.Context, id string) (*models.Fragment, error)
	ListFragments(ctx context.Context, moleculeID string, limit, offset int) ([]models.Fragment, bool, error)
	DeleteFragment(ctx context.Context, id string) error
}

// SpectrumService defines spectrum storage and peak picking operations.
type SpectrumService interface {
	CreateSpectrum(ctx context.Context, moleculeID string, req models.CreateSpectrumRequest) (*models.Spectrum, error)
	GetSpectrum(ctx context.Context, id string) (*models.Spectrum, error)
	ListSpectra(ctx context.Context, moleculeID string, limit, offset int) ([]models.Spectrum, bool, error)
	DeleteSpectrum(ctx context.Context, id string) error
	PickSignals(ctx context.Context, id string, req models.PickRequest) ([]spectrum.Signal, error)
}

// StatsService reports aggregate storage counts.
type StatsService interface {
	Stats(ctx context.Context) (*models.Stats, error)
}
