package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/spectrakit/fragmentor/internal/domain"
	"github.com/spectrakit/fragmentor/internal/metrics"
	"github.com/spectrakit/fragmentor/internal/models"
)

// Compile-time check: *StatsService must satisfy domain.StatsService.
var _ domain.StatsService = (*StatsService)(nil)

// StatsService aggregates storage counts and refreshes the count gauges.
type StatsService struct {
	molecules MoleculeStore
	fragments FragmentStore
	log       *logrus.Logger
}

// NewStatsService creates a StatsService.
func NewStatsService(molecules MoleculeStore, fragments FragmentStore, log *logrus.Logger) *StatsService {
	return &StatsService{molecules: molecules, fragments: fragments, log: log}
}

// Stats counts stored molecules and fragments, updating the Prometheus
// gauges as a side effect.
func (s *StatsService) Stats(ctx context.Context) (*models.Stats, error) {
	molecules, err := s.molecules.CountMolecules(ctx)
	if err != nil {
		return nil, err
	}

	fragments, err := s.fragments.CountFragments(ctx)
	if err != nil {
		return nil, err
	}

	metrics.MoleculeCount.Set(float64(molecules))
	metrics.FragmentCount.Set(float64(fragments))

	return &models.Stats{Molecules: molecules, Fragments: fragments}, nil
}
