package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"credit-engine/domain"
	"credit-engine/service"
)

type FreedomDateHandler struct {
	service *service.StrategyService
}

func NewFreedomDateHandler(service *service.StrategyService) *FreedomDateHandler {
	return &FreedomDateHandler{service: service}
}

func (h *FreedomDateHandler) GetDebtFreedomDate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.FreedomDateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.DebtFreedomDate(input.Debts, input.MonthlyBudget, input.Method, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
