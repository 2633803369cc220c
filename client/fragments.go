package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// FragmentService handles fragment extraction and retrieval.
type FragmentService struct {
	c *Client
}

// fragmentListResponse wraps the paginated fragment list response.
type fragmentListResponse struct {
	Fragments []Fragment `json:"fragments"`
	HasMore   bool       `json:"has_more"`
}

// Extract runs a fragment extraction on the given molecule. The returned
// fragment is stored only when req.Persist is set.
func (s *FragmentService) Extract(ctx context.Context, moleculeID string, req *ExtractFragmentRequest) (*Fragment, error) {
	var f Fragment
	path := fmt.Sprintf("/api/v1/molecules/%s/fragments", url.PathEscape(moleculeID))
	if err := s.c.post(ctx, path, req, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns stored fragments of a molecule with pagination.
func (s *FragmentService) List(ctx context.Context, moleculeID string, limit, offset int) ([]Fragment, bool, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	var resp fragmentListResponse
	path := fmt.Sprintf("/api/v1/molecules/%s/fragments", url.PathEscape(moleculeID))
	if err := s.c.get(ctx, path, params, &resp); err != nil {
		return nil, false, err
	}
	return resp.Fragments, resp.HasMore, nil
}

// Get returns a single stored fragment by ID.
func (s *FragmentService) Get(ctx context.Context, id string) (*Fragment, error) {
	var f Fragment
	if err := s.c.get(ctx, "/api/v1/fragments/"+url.PathEscape(id), nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete removes a stored fragment by ID.
func (s *FragmentService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/fragments/"+url.PathEscape(id))
}
