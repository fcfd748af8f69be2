package http

import (
	"encoding/json"
	"net/http"

	"emi-calculator/domain"
	"emi-calculator/service"
)

type SimulateHandler struct {
	service *service.SimulationService
}

func NewSimulateHandler(service *service.SimulationService) *SimulateHandler {
	return &SimulateHandler{service: service}
}

func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Simulate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
