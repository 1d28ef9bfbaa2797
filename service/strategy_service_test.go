package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"credit-engine/domain"
	"credit-engine/repository"
)

type MockPlanRepository struct {
	SaveCalled bool
	SavedCount int
	ForceError bool
}

func (m *MockPlanRepository) Save(record domain.PlanRecord) error {
	m.SaveCalled = true
	m.SavedCount++
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func newStrategyService(repo repository.PlanRepository, cache repository.CacheRepository) *StrategyService {
	return NewStrategyService(NewPayoffService(), repo, cache)
}

func scenarioDebts() []domain.Debt {
	return []domain.Debt{
		{ID: "small", Name: "Préstamo personal", Balance: 200, InterestRate: 6, MinimumPayment: 20},
		{ID: "mid", Name: "Tarjeta", Balance: 3000, InterestRate: 12, MinimumPayment: 90},
		{ID: "big", Name: "Tarjeta oro", Balance: 10000, InterestRate: 25, MinimumPayment: 200},
	}
}

func TestOrderAvalanche(t *testing.T) {

	debts := scenarioDebts()
	ordered := OrderAvalanche(debts)

	want := []string{"big", "mid", "small"}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, ordered[i].ID)
		}
	}

	// la entrada no se modifica
	if debts[0].ID != "small" {
		t.Errorf("input slice was reordered")
	}
}

func TestOrderSnowball(t *testing.T) {

	debts := scenarioDebts()
	ordered := OrderSnowball(debts)

	want := []string{"small", "mid", "big"}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, ordered[i].ID)
		}
	}
}

func TestOrderAvalanche_TiesKeepInputOrder(t *testing.T) {

	debts := []domain.Debt{
		{ID: "first", Balance: 500, InterestRate: 15, MinimumPayment: 20},
		{ID: "second", Balance: 900, InterestRate: 15, MinimumPayment: 30},
	}

	ordered := OrderAvalanche(debts)

	if ordered[0].ID != "first" || ordered[1].ID != "second" {
		t.Errorf("expected stable order for equal rates, got [%s %s]",
			ordered[0].ID, ordered[1].ID)
	}
}

func TestCalculateAvalanchePayoff_SavesPlan(t *testing.T) {

	mockRepo := &MockPlanRepository{}
	service := newStrategyService(mockRepo, repository.NewMockCache())

	result, err := service.CalculateAvalanchePayoff(scenarioDebts(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Strategy != StrategyAvalanche {
		t.Errorf("expected strategy avalanche, got %s", result.Strategy)
	}
	if !mockRepo.SaveCalled {
		t.Errorf("expected repository Save to be called")
	}
}

func TestCompareStrategies_ScenarioTotals(t *testing.T) {

	service := newStrategyService(&MockPlanRepository{}, repository.NewMockCache())

	comparison, err := service.CompareStrategies(scenarioDebts(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if comparison.Avalanche.TotalDebt != comparison.Snowball.TotalDebt {
		t.Errorf("total debt must be strategy-independent: %.2f vs %.2f",
			comparison.Avalanche.TotalDebt, comparison.Snowball.TotalDebt)
	}
	if comparison.Avalanche.TotalDebt != 13200 {
		t.Errorf("expected total debt 13200, got %.2f", comparison.Avalanche.TotalDebt)
	}

	if comparison.Avalanche.TotalInterest > comparison.Snowball.TotalInterest {
		t.Errorf("avalanche interest %.2f should not exceed snowball interest %.2f",
			comparison.Avalanche.TotalInterest, comparison.Snowball.TotalInterest)
	}

	// snowball liquida la deuda pequeña de inmediato; avalanche la deja
	// amortizando a mínimos
	snowballSmall := payoffMonthOf(t, comparison.Snowball, "small")
	avalancheSmall := payoffMonthOf(t, comparison.Avalanche, "small")
	if snowballSmall != 1 {
		t.Errorf("expected snowball to clear the small debt in month 1, got %d", snowballSmall)
	}
	if avalancheSmall <= snowballSmall {
		t.Errorf("expected avalanche to clear the small debt later than snowball (%d vs %d)",
			avalancheSmall, snowballSmall)
	}
}

func payoffMonthOf(t *testing.T, strategy domain.PayoffStrategy, debtID string) int {
	t.Helper()
	for _, schedule := range strategy.PayoffOrder {
		if schedule.DebtID == debtID {
			return schedule.PayoffMonth
		}
	}
	t.Fatalf("debt %s not found in payoff order", debtID)
	return 0
}

func TestCompareStrategies_RecommendsAvalancheOnLargeSavings(t *testing.T) {

	service := newStrategyService(&MockPlanRepository{}, repository.NewMockCache())

	debts := []domain.Debt{
		{ID: "caro", Balance: 10000, InterestRate: 40, MinimumPayment: 350},
		{ID: "barato", Balance: 9000, InterestRate: 1, MinimumPayment: 100},
	}

	comparison, err := service.CompareStrategies(debts, 800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if comparison.InterestSaved <= AvalancheSavingsThreshold {
		t.Fatalf("expected savings above %.0f, got %.2f",
			float64(AvalancheSavingsThreshold), comparison.InterestSaved)
	}
	if !strings.Contains(comparison.Recommendation, "avalanche") {
		t.Errorf("expected avalanche recommendation, got %q", comparison.Recommendation)
	}
}

func TestCompareStrategies_RecommendsSnowballForQuickWins(t *testing.T) {

	service := newStrategyService(&MockPlanRepository{}, repository.NewMockCache())

	debts := []domain.Debt{
		{ID: "chica", Balance: 800, InterestRate: 10, MinimumPayment: 50},
	}

	comparison, err := service.CompareStrategies(debts, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(comparison.Recommendation, "snowball") {
		t.Errorf("expected snowball recommendation, got %q", comparison.Recommendation)
	}
}

func TestCompareStrategies_ComparableWhenNoEdge(t *testing.T) {

	service := newStrategyService(&MockPlanRepository{}, repository.NewMockCache())

	debts := []domain.Debt{
		{ID: "unica", Balance: 5000, InterestRate: 10, MinimumPayment: 100},
	}

	comparison, err := service.CompareStrategies(debts, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if comparison.InterestSaved != 0 {
		t.Errorf("expected no savings for a single debt, got %.2f", comparison.InterestSaved)
	}
	if !strings.Contains(comparison.Recommendation, "comparables") {
		t.Errorf("expected neutral recommendation, got %q", comparison.Recommendation)
	}
}

func TestCompareStrategies_UsesCache(t *testing.T) {

	cache := repository.NewMockCache()
	service := newStrategyService(&MockPlanRepository{}, cache)

	first, err := service.CompareStrategies(scenarioDebts(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected one cached comparison, got %d", cache.Len())
	}

	second, err := service.CompareStrategies(scenarioDebts(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached comparison differs from computed one")
	}
}

func TestDebtFreedomDate(t *testing.T) {

	service := newStrategyService(&MockPlanRepository{}, repository.NewMockCache())

	debts := []domain.Debt{
		{ID: "a", Balance: 1000, InterestRate: 0, MinimumPayment: 100},
	}
	now := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	result, err := service.DebtFreedomDate(debts, 250, StrategyAvalanche, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1000 / 250 = 4 meses
	want := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	if !result.Date.Equal(want) {
		t.Errorf("expected freedom date %v, got %v", want, result.Date)
	}
	if !result.Completed {
		t.Errorf("expected completed simulation")
	}
}

func TestDebtFreedomDate_InvalidMethod(t *testing.T) {

	service := newStrategyService(&MockPlanRepository{}, repository.NewMockCache())

	debts := []domain.Debt{
		{ID: "a", Balance: 1000, InterestRate: 0, MinimumPayment: 100},
	}

	if _, err := service.DebtFreedomDate(debts, 250, "compare", time.Now()); err == nil {
		t.Errorf("expected error for invalid method")
	}
}
