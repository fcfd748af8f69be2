package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"emi-calculator/domain"
	"emi-calculator/repository"
	"emi-calculator/service"
)

func newTestHandler() *SimulateHandler {
	repo := repository.NewSimulationRepositoryMemory()
	cache := repository.NewMockCache()
	return NewSimulateHandler(service.NewSimulationService(repo, cache))
}

func TestSimulateHandler_OK(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{
		"Principal": 5000000,
		"AnnualRate": 8.5,
		"TenureMonths": 240,
		"MonthlyPrepayment": 10000,
		"PrepaymentStartYear": 1,
		"TaxSlabPercent": 30
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/simulate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.Simulate(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.SimulationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.EMI != 43391 {
		t.Errorf("expected EMI 43391, got %.0f", result.EMI)
	}
	if result.InterestSaved <= 0 {
		t.Error("expected positive interest saved")
	}
}

func TestSimulateHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/simulate", nil)
	w := httptest.NewRecorder()

	handler.Simulate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestSimulateHandler_BadRequest(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/simulate",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.Simulate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSimulateHandler_ValidationError(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{
		"Principal": 5000000,
		"AnnualRate": 8.5,
		"TenureMonths": 240,
		"TaxSlabPercent": 15
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/simulate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.Simulate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
