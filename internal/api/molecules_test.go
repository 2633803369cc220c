package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spectrakit/fragmentor/internal/api"
	"github.com/spectrakit/fragmentor/internal/chem"
	"github.com/spectrakit/fragmentor/internal/models"
)

func TestMoleculeHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"name":"methanol","atoms":[{"index":0,"element":"C"},{"index":1,"element":"O"}],"bonds":[{"from":0,"to":1,"order":1}]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			body:       `{"atoms":[{"index":0,"element":"C"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no atoms",
			body:       `{"name":"empty"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate id",
			body:       `{"id":"m1","name":"methanol","atoms":[{"index":0,"element":"C"}]}`,
			createErr:  models.ErrDuplicateKey,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockMoleculeRepo{
				createFn: func(_ context.Context, req models.CreateMoleculeRequest) (*models.Molecule, error) {
					if tc.createErr != nil {
						return nil, tc.createErr
					}
					return &models.Molecule{ID: req.ID, Name: req.Name, Atoms: req.Atoms, Bonds: req.Bonds}, nil
				},
			}

			r := newTestRouter()
			h := api.NewMoleculeHandler(repo, testLogger())
			r.POST("/molecules", h.Create)

			w := doRequest(r, http.MethodPost, "/molecules", tc.body)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestMoleculeHandler_Get(t *testing.T) {
	repo := &mockMoleculeRepo{
		getFn: func(_ context.Context, id string) (*models.Molecule, error) {
			if id != "m1" {
				return nil, models.ErrMoleculeNotFound
			}
			return &models.Molecule{
				ID:    "m1",
				Name:  "methane",
				Atoms: []chem.Atom{{Index: 0, Element: "C"}},
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewMoleculeHandler(repo, testLogger())
	r.GET("/molecules/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/molecules/m1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got models.Molecule
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshalling response: %v", err)
	}
	if got.Name != "methane" {
		t.Errorf("Name = %q, want %q", got.Name, "methane")
	}

	w = doRequest(r, http.MethodGet, "/molecules/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestMoleculeHandler_List(t *testing.T) {
	repo := &mockMoleculeRepo{
		listFn: func(_ context.Context, limit, _ int) ([]models.MoleculeSummary, bool, error) {
			if limit != 2 {
				t.Errorf("limit = %d, want 2", limit)
			}
			return []models.MoleculeSummary{{ID: "m1"}, {ID: "m2"}}, true, nil
		},
	}

	r := newTestRouter()
	h := api.NewMoleculeHandler(repo, testLogger())
	r.GET("/molecules", h.List)

	w := doRequest(r, http.MethodGet, "/molecules?limit=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Molecules []models.MoleculeSummary `json:"molecules"`
		HasMore   bool                     `json:"has_more"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling response: %v", err)
	}
	if len(resp.Molecules) != 2 || !resp.HasMore {
		t.Errorf("got %d molecules, has_more=%v, want 2 and true", len(resp.Molecules), resp.HasMore)
	}
}

func TestMoleculeHandler_Delete(t *testing.T) {
	repo := &mockMoleculeRepo{
		deleteFn: func(_ context.Context, id string) error {
			if id != "m1" {
				return models.ErrMoleculeNotFound
			}
			return nil
		},
	}

	r := newTestRouter()
	h := api.NewMoleculeHandler(repo, testLogger())
	r.DELETE("/molecules/:id", h.Delete)

	if w := doRequest(r, http.MethodDelete, "/molecules/m1", ""); w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, "/molecules/missing", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
