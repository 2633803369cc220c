package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SpectrumService handles spectrum recording and peak picking.
type SpectrumService struct {
	c *Client
}

// spectrumListResponse wraps the paginated spectrum list response.
type spectrumListResponse struct {
	Spectra []Spectrum `json:"spectra"`
	HasMore bool       `json:"has_more"`
}

// pickResponse wraps the signals matched by a pick request.
type pickResponse struct {
	Signals []Signal `json:"signals"`
}

// Create records a spectrum for the given molecule.
func (s *SpectrumService) Create(ctx context.Context, moleculeID string, req *CreateSpectrumRequest) (*Spectrum, error) {
	var sp Spectrum
	path := fmt.Sprintf("/api/v1/molecules/%s/spectra", url.PathEscape(moleculeID))
	if err := s.c.post(ctx, path, req, &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

// List returns spectra of a molecule with pagination.
func (s *SpectrumService) List(ctx context.Context, moleculeID string, limit, offset int) ([]Spectrum, bool, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	var resp spectrumListResponse
	path := fmt.Sprintf("/api/v1/molecules/%s/spectra", url.PathEscape(moleculeID))
	if err := s.c.get(ctx, path, params, &resp); err != nil {
		return nil, false, err
	}
	return resp.Spectra, resp.HasMore, nil
}

// Get returns a single spectrum by ID.
func (s *SpectrumService) Get(ctx context.Context, id string) (*Spectrum, error) {
	var sp Spectrum
	if err := s.c.get(ctx, "/api/v1/spectra/"+url.PathEscape(id), nil, &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

// Pick returns signals of a spectrum near a chemical shift.
func (s *SpectrumService) Pick(ctx context.Context, id string, req *PickRequest) ([]Signal, error) {
	var resp pickResponse
	path := fmt.Sprintf("/api/v1/spectra/%s/pick", url.PathEscape(id))
	if err := s.c.post(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Signals, nil
}

// Delete removes a spectrum by ID.
func (s *SpectrumService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/spectra/"+url.PathEscape(id))
}
