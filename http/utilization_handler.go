package http

import (
	"encoding/json"
	"net/http"

	"credit-engine/domain"
	"credit-engine/service"
)

type UtilizationHandler struct {
	service *service.UtilizationService
}

func NewUtilizationHandler(service *service.UtilizationService) *UtilizationHandler {
	return &UtilizationHandler{service: service}
}

func (h *UtilizationHandler) CalculateUtilization(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.UtilizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.service.CalculateUtilization(input.Accounts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
