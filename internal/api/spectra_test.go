package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spectrakit/fragmentor/internal/api"
	"github.com/spectrakit/fragmentor/internal/models"
	"github.com/spectrakit/fragmentor/internal/spectrum"
)

func TestSpectrumHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
	}{
		{
			name:       "known experiment resolves nuclei",
			body:       `{"name":"13C ref","experiment":"BB","signals":[{"shifts":[128.5],"intensity":1}]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "explicit nuclei",
			body:       `{"name":"custom","nuclei":["13C"],"signals":[{"shifts":[10.0],"intensity":1}]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown experiment without nuclei",
			body:       `{"name":"mystery","experiment":"XYZ"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "signal dimension mismatch",
			body:       `{"name":"bad","experiment":"HSQC","signals":[{"shifts":[1.0],"intensity":1}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "molecule missing",
			body:       `{"name":"13C ref","experiment":"BB"}`,
			createErr:  models.ErrMoleculeNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockSpectrumRepo{
				createFn: func(_ context.Context, moleculeID string, req models.CreateSpectrumRequest) (*models.Spectrum, error) {
					if tc.createErr != nil {
						return nil, tc.createErr
					}
					return &models.Spectrum{ID: "sp1", MoleculeID: moleculeID, Name: req.Name, Nuclei: req.Nuclei}, nil
				},
			}

			r := newTestRouter()
			h := api.NewSpectrumHandler(repo, testLogger())
			r.POST("/molecules/:id/spectra", h.Create)

			w := doRequest(r, http.MethodPost, "/molecules/m1/spectra", tc.body)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestSpectrumHandler_Pick(t *testing.T) {
	repo := &mockSpectrumRepo{
		pickFn: func(_ context.Context, id string, req models.PickRequest) ([]spectrum.Signal, error) {
			if id != "sp1" {
				return nil, models.ErrSpectrumNotFound
			}
			if req.Closest {
				return []spectrum.Signal{{Shifts: []float64{128.5}, Intensity: 2}}, nil
			}
			return []spectrum.Signal{
				{Shifts: []float64{128.5}, Intensity: 2},
				{Shifts: []float64{128.9}, Intensity: 1},
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewSpectrumHandler(repo, testLogger())
	r.POST("/spectra/:id/pick", h.Pick)

	w := doRequest(r, http.MethodPost, "/spectra/sp1/pick", `{"shift":128.7,"nucleus":"13C","tolerance":0.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Signals []spectrum.Signal `json:"signals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling response: %v", err)
	}
	if len(resp.Signals) != 2 {
		t.Errorf("len(Signals) = %d, want 2", len(resp.Signals))
	}

	// Missing nucleus fails validation before reaching the service.
	w = doRequest(r, http.MethodPost, "/spectra/sp1/pick", `{"shift":128.7,"tolerance":0.5}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	// Zero tolerance fails validation.
	w = doRequest(r, http.MethodPost, "/spectra/sp1/pick", `{"shift":128.7,"nucleus":"13C"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/spectra/missing/pick", `{"shift":128.7,"nucleus":"13C","tolerance":0.5}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
