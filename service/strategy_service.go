package service

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"credit-engine/domain"
	"credit-engine/repository"
)

const (
	StrategyAvalanche = "avalanche"
	StrategySnowball  = "snowball"
	StrategyCompare   = "compare"
)

const comparisonCacheTTL = 15 * time.Minute

type StrategyService struct {
	payoffService *PayoffService
	repo          repository.PlanRepository
	cache         repository.CacheRepository
}

func NewStrategyService(
	payoffService *PayoffService,
	repo repository.PlanRepository,
	cache repository.CacheRepository,
) *StrategyService {
	return &StrategyService{
		payoffService: payoffService,
		repo:          repo,
		cache:         cache,
	}
}

// OrderAvalanche returns the debts sorted by interest rate, highest first.
// El orden es estable: con tasas iguales se conserva el orden de entrada
// (no hay clave secundaria definida).
func OrderAvalanche(debts []domain.Debt) []domain.Debt {
	ordered := make([]domain.Debt, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].InterestRate > ordered[j].InterestRate
	})
	return ordered
}

// OrderSnowball returns the debts sorted by balance, smallest first.
// Mismo criterio de estabilidad que OrderAvalanche.
func OrderSnowball(debts []domain.Debt) []domain.Debt {
	ordered := make([]domain.Debt, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Balance < ordered[j].Balance
	})
	return ordered
}

// CalculateAvalanchePayoff simulates paying highest-rate debts first.
func (s *StrategyService) CalculateAvalanchePayoff(
	debts []domain.Debt,
	monthlyBudget float64,
) (domain.PayoffStrategy, error) {
	return s.calculate(debts, monthlyBudget, StrategyAvalanche)
}

// CalculateSnowballPayoff simulates paying smallest-balance debts first.
func (s *StrategyService) CalculateSnowballPayoff(
	debts []domain.Debt,
	monthlyBudget float64,
) (domain.PayoffStrategy, error) {
	return s.calculate(debts, monthlyBudget, StrategySnowball)
}

func (s *StrategyService) calculate(
	debts []domain.Debt,
	monthlyBudget float64,
	strategy string,
) (domain.PayoffStrategy, error) {

	var ordered []domain.Debt
	switch strategy {
	case StrategyAvalanche:
		ordered = OrderAvalanche(debts)
	case StrategySnowball:
		ordered = OrderSnowball(debts)
	default:
		return domain.PayoffStrategy{}, errors.New("estrategia inválida")
	}

	result, err := s.payoffService.SimulatePayoff(ordered, monthlyBudget)
	if err != nil {
		return domain.PayoffStrategy{}, err
	}
	result.Strategy = strategy

	// Guardar el resumen del plan (no crítico si falla)
	record := domain.PlanRecord{
		Strategy:       result.Strategy,
		TotalDebt:      result.TotalDebt,
		TotalInterest:  result.TotalInterest,
		MonthsToPayoff: result.MonthsToPayoff,
		Completed:      result.Completed,
	}
	if err := s.repo.Save(record); err != nil {
		log.Printf("Warning: failed to save payoff plan: %v", err)
	}

	return result, nil
}

// CompareStrategies runs both orderings over the same debts and budget and
// recommends one. Results are cached by content hash; a cache hit returns
// exactly what the computation would have produced.
func (s *StrategyService) CompareStrategies(
	debts []domain.Debt,
	monthlyBudget float64,
) (domain.StrategyComparison, error) {

	key := comparisonCacheKey(debts, monthlyBudget)
	if key != "" {
		if raw, ok := s.cache.Get(key); ok {
			var cached domain.StrategyComparison
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	avalanche, err := s.calculate(debts, monthlyBudget, StrategyAvalanche)
	if err != nil {
		return domain.StrategyComparison{}, err
	}
	snowball, err := s.calculate(debts, monthlyBudget, StrategySnowball)
	if err != nil {
		return domain.StrategyComparison{}, err
	}

	savings := roundTo2Decimals(snowball.TotalInterest - avalanche.TotalInterest)
	monthsSaved := snowball.MonthsToPayoff - avalanche.MonthsToPayoff

	comparison := domain.StrategyComparison{
		Avalanche:      avalanche,
		Snowball:       snowball,
		InterestSaved:  savings,
		MonthsSaved:    monthsSaved,
		Recommendation: buildRecommendation(debts, savings, monthsSaved),
	}

	if key != "" {
		if raw, err := json.Marshal(comparison); err == nil {
			if err := s.cache.Set(key, string(raw), comparisonCacheTTL); err != nil {
				log.Printf("Warning: failed to cache strategy comparison: %v", err)
			}
		}
	}

	return comparison, nil
}

// DebtFreedomDate projects the calendar date on which the last debt closes
// under the given method. now lo aporta el caller; el motor nunca consulta
// el reloj.
func (s *StrategyService) DebtFreedomDate(
	debts []domain.Debt,
	monthlyBudget float64,
	method string,
	now time.Time,
) (domain.DebtFreedomDate, error) {

	result, err := s.calculate(debts, monthlyBudget, method)
	if err != nil {
		return domain.DebtFreedomDate{}, err
	}

	return domain.DebtFreedomDate{
		Date:      now.AddDate(0, result.MonthsToPayoff, 0),
		Strategy:  result.Strategy,
		Completed: result.Completed,
	}, nil
}

func buildRecommendation(debts []domain.Debt, savings float64, monthsSaved int) string {
	if savings > AvalancheSavingsThreshold {
		return fmt.Sprintf(
			"Con el método avalanche ahorrarás $%.2f en intereses y terminarás %d meses antes. Prioriza las deudas con mayor tasa de interés.",
			savings, monthsSaved)
	}
	for _, debt := range debts {
		if debt.Balance < QuickWinBalanceThreshold {
			return "El método snowball te dará victorias rápidas: liquidar primero las deudas pequeñas ayuda a mantener la motivación."
		}
	}
	return "Ambas estrategias dan resultados comparables para tus deudas; elige la que te resulte más fácil de sostener."
}

// comparisonCacheKey derives a deterministic key from the canonical JSON of
// the input. Devuelve "" si la entrada no es serializable.
func comparisonCacheKey(debts []domain.Debt, monthlyBudget float64) string {
	payload, err := json.Marshal(struct {
		Debts         []domain.Debt
		MonthlyBudget float64
	}{debts, monthlyBudget})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("strategy-comparison:%x", sum)
}
