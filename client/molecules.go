package client

import (
	"context"
	"net/url"
	"strconv"
)

// MoleculeService handles molecule CRUD operations.
type MoleculeService struct {
	c *Client
}

// moleculeListResponse wraps the paginated molecule list response.
type moleculeListResponse struct {
	Molecules []MoleculeSummary `json:"molecules"`
	HasMore   bool              `json:"has_more"`
}

// List returns molecule summaries with pagination.
func (s *MoleculeService) List(ctx context.Context, limit, offset int) ([]MoleculeSummary, bool, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	var resp moleculeListResponse
	if err := s.c.get(ctx, "/api/v1/molecules", params, &resp); err != nil {
		return nil, false, err
	}
	return resp.Molecules, resp.HasMore, nil
}

// Get returns a single molecule by ID.
func (s *MoleculeService) Get(ctx context.Context, id string) (*Molecule, error) {
	var m Molecule
	if err := s.c.get(ctx, "/api/v1/molecules/"+url.PathEscape(id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create stores a new molecule.
func (s *MoleculeService) Create(ctx context.Context, req *CreateMoleculeRequest) (*Molecule, error) {
	var m Molecule
	if err := s.c.post(ctx, "/api/v1/molecules", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes a molecule and its fragments and spectra.
func (s *MoleculeService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/molecules/"+url.PathEscape(id))
}
