package api

import "github.com/spectrakit/fragmentor/internal/domain"

// Handler dependencies are the canonical domain interfaces. Aliases keep
// handler signatures readable without re-declaring the method sets.
type (
	MoleculeRepository = domain.MoleculeService
	FragmentRepository = domain.FragmentService
	SpectrumRepository = domain.SpectrumService
	StatsRepository    = domain.StatsService
)
