package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"credit-engine/domain"
	"credit-engine/service"
)

type PayoffHandler struct {
	service *service.StrategyService
}

func NewPayoffHandler(service *service.StrategyService) *PayoffHandler {
	return &PayoffHandler{service: service}
}

func (h *PayoffHandler) CalculatePayoffPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.PayoffPlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var result any
	var err error
	switch input.Strategy {
	case service.StrategyAvalanche:
		result, err = h.service.CalculateAvalanchePayoff(input.Debts, input.MonthlyBudget)
	case service.StrategySnowball:
		result, err = h.service.CalculateSnowballPayoff(input.Debts, input.MonthlyBudget)
	case service.StrategyCompare:
		result, err = h.service.CompareStrategies(input.Debts, input.MonthlyBudget)
	default:
		http.Error(w, "estrategia inválida", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("Error calculating payoff plan: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
