package http

import (
	"encoding/json"
	"net/http"
	"time"

	"credit-engine/domain"
	"credit-engine/service"
)

type CreditScoreHandler struct {
	service *service.CreditScoreService
}

func NewCreditScoreHandler(service *service.CreditScoreService) *CreditScoreHandler {
	return &CreditScoreHandler{service: service}
}

func (h *CreditScoreHandler) EstimateCreditScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.ScoreFactors
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// El reloj es del handler; el motor de cálculo nunca llama time.Now
	result, err := h.service.EstimateCreditScore(input, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
