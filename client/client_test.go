package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Version: "0.3.0"})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
	if resp.Version != "0.3.0" {
		t.Errorf("got version %q, want 0.3.0", resp.Version)
	}
}

func TestStats(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/stats": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, StatsResponse{Molecules: 12, Fragments: 48})
		},
	})
	resp, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if resp.Molecules != 12 || resp.Fragments != 48 {
		t.Errorf("got %+v, want 12 molecules and 48 fragments", resp)
	}
}

func TestMoleculesCRUD(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/molecules": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]any{
				"molecules": []MoleculeSummary{{ID: "m1", Name: "ethanol", AtomCount: 3}},
				"has_more":  false,
			})
		},
		"POST /api/v1/molecules": func(w http.ResponseWriter, r *http.Request) {
			var req CreateMoleculeRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, Molecule{ID: req.ID, Name: req.Name, Atoms: req.Atoms, Bonds: req.Bonds})
		},
		"GET /api/v1/molecules/m1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Molecule{ID: "m1", Name: "ethanol"})
		},
		"DELETE /api/v1/molecules/m1": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(204)
		},
	})

	ctx := context.Background()

	mols, hasMore, err := c.Molecules.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(mols) != 1 || hasMore {
		t.Errorf("List: got %d molecules, hasMore=%v", len(mols), hasMore)
	}

	m, err := c.Molecules.Create(ctx, &CreateMoleculeRequest{
		ID:   "m2",
		Name: "methanol",
		Atoms: []Atom{
			{Index: 0, Element: "C"},
			{Index: 1, Element: "O"},
		},
		Bonds: []Bond{{From: 0, To: 1, Order: 1}},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if m.Name != "methanol" || len(m.Atoms) != 2 {
		t.Errorf("Create: got %+v", m)
	}

	m, err = c.Molecules.Get(ctx, "m1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if m.ID != "m1" {
		t.Errorf("Get: got id %q", m.ID)
	}

	if err := c.Molecules.Delete(ctx, "m1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestFragmentExtract(t *testing.T) {
	var gotReq ExtractFragmentRequest
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/molecules/m1/fragments": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotReq) //nolint:errcheck
			jsonResponse(w, 200, Fragment{
				ID:         "f1",
				MoleculeID: "m1",
				RootAtom:   gotReq.RootAtom,
				MaxSphere:  gotReq.MaxSphere,
				Atoms:      []Atom{{Index: 0, Element: "C"}, {Index: 1, Element: "C"}},
				Bonds:      []Bond{{From: 0, To: 1, Order: 1}},
			})
		},
		"GET /api/v1/molecules/m1/fragments": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]any{
				"fragments": []Fragment{{ID: "f1", MoleculeID: "m1"}},
				"has_more":  true,
			})
		},
		"GET /api/v1/fragments/f1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Fragment{ID: "f1", MoleculeID: "m1"})
		},
		"DELETE /api/v1/fragments/f1": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(204)
		},
	})

	ctx := context.Background()

	f, err := c.Fragments.Extract(ctx, "m1", &ExtractFragmentRequest{
		RootAtom:  2,
		MaxSphere: 3,
		Excluded:  []int{5},
	})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if f.RootAtom != 2 || len(f.Atoms) != 2 {
		t.Errorf("Extract: got %+v", f)
	}
	if len(gotReq.Excluded) != 1 || gotReq.Excluded[0] != 5 {
		t.Errorf("Extract request: got excluded %v", gotReq.Excluded)
	}

	frags, hasMore, err := c.Fragments.List(ctx, "m1", 5, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(frags) != 1 || !hasMore {
		t.Errorf("List: got %d fragments, hasMore=%v", len(frags), hasMore)
	}

	f, err = c.Fragments.Get(ctx, "f1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if f.ID != "f1" {
		t.Errorf("Get: got id %q", f.ID)
	}

	if err := c.Fragments.Delete(ctx, "f1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestSpectra(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/molecules/m1/spectra": func(w http.ResponseWriter, r *http.Request) {
			var req CreateSpectrumRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, Spectrum{
				ID:         "s1",
				MoleculeID: "m1",
				Name:       req.Name,
				Experiment: req.Experiment,
				Nuclei:     []string{"13C"},
			})
		},
		"POST /api/v1/spectra/s1/pick": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]any{
				"signals": []Signal{{Shifts: []float64{128.5}, Intensity: 2}},
			})
		},
	})

	ctx := context.Background()

	sp, err := c.Spectra.Create(ctx, "m1", &CreateSpectrumRequest{
		Name:       "13C spectrum",
		Experiment: "BB",
		Signals:    []Signal{{Shifts: []float64{128.5}}},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if sp.ID != "s1" || len(sp.Nuclei) != 1 {
		t.Errorf("Create: got %+v", sp)
	}

	signals, err := c.Spectra.Pick(ctx, "s1", &PickRequest{Shift: 128.6, Nucleus: "13C", Tolerance: 0.5, Closest: true})
	if err != nil {
		t.Fatalf("Pick error: %v", err)
	}
	if len(signals) != 1 || signals[0].Shifts[0] != 128.5 {
		t.Errorf("Pick: got %+v", signals)
	}
}

func TestAPIError(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/molecules/missing": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 404, map[string]string{"code": "not_found", "message": "molecule not found"})
		},
		"POST /api/v1/molecules": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 409, map[string]string{"code": "conflict", "message": "duplicate"})
		},
		"POST /api/v1/molecules/m1/fragments": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 422, map[string]string{"code": "validation_error", "message": "root atom out of range"})
		},
	})

	ctx := context.Background()

	_, err := c.Molecules.Get(ctx, "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not found, got: %v", err)
	}

	_, err = c.Molecules.Create(ctx, &CreateMoleculeRequest{ID: "dup", Name: "dup"})
	if !IsConflict(err) {
		t.Errorf("expected conflict, got: %v", err)
	}

	_, err = c.Fragments.Extract(ctx, "m1", &ExtractFragmentRequest{RootAtom: 99})
	if !IsValidation(err) {
		t.Errorf("expected validation error, got: %v", err)
	}
}
