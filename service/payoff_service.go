package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"credit-engine/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// PayoffService simulates month-by-month debt amortization. It is a pure
// calculator: the order of the debts it receives IS the payoff priority,
// it knows nothing about avalanche or snowball.
type PayoffService struct{}

func NewPayoffService() *PayoffService {
	return &PayoffService{}
}

// workingDebt is the mutable copy the simulator amortizes. All money
// arithmetic stays in decimal; floats only appear in the output records.
type workingDebt struct {
	debt        domain.Debt
	remaining   decimal.Decimal
	interest    decimal.Decimal
	payments    []domain.PaymentRecord
	payoffMonth int
	paidOff     bool
}

// SimulatePayoff amortizes the given debts, in the given order, against a
// monthly budget.
//
// Cada mes el excedente (presupuesto menos mínimos) va COMPLETO a la
// primera deuda no pagada del orden; si esa deuda se liquida a mitad de
// mes el sobrante se pierde y su pago mínimo recién engrosa el excedente
// a partir del mes siguiente. Un presupuesto que no cubre los mínimos se
// simula igual: el resultado lo delata con Completed=false.
func (s *PayoffService) SimulatePayoff(
	orderedDebts []domain.Debt,
	monthlyBudget float64,
) (domain.PayoffStrategy, error) {

	if err := validateDebts(orderedDebts); err != nil {
		return domain.PayoffStrategy{}, err
	}
	if monthlyBudget <= 0 {
		return domain.PayoffStrategy{}, errors.New("presupuesto mensual inválido")
	}

	tolerance := decimal.NewFromFloat(DebtBalanceTolerance)

	// Copias de trabajo; las deudas de entrada no se tocan
	working := make([]*workingDebt, len(orderedDebts))
	minimumTotal := decimal.Zero
	totalDebt := decimal.Zero
	for i, d := range orderedDebts {
		working[i] = &workingDebt{
			debt:      d,
			remaining: decimal.NewFromFloat(d.Balance).Round(2),
		}
		minimumTotal = minimumTotal.Add(decimal.NewFromFloat(d.MinimumPayment))
		totalDebt = totalDebt.Add(decimal.NewFromFloat(d.Balance))
	}

	extraPool := decimal.NewFromFloat(monthlyBudget).Sub(minimumTotal)
	if extraPool.IsNegative() {
		extraPool = decimal.Zero
	}

	totalInterest := decimal.Zero
	monthsSimulated := 0

	for month := 1; month <= MaxSimulationMonths; month++ {
		allPaid := true
		for _, w := range working {
			if !w.paidOff {
				allPaid = false
				break
			}
		}
		if allPaid {
			break
		}
		monthsSimulated = month

		extraGranted := false
		freedThisMonth := decimal.Zero

		for _, w := range working {
			if w.paidOff {
				continue
			}

			monthlyRate := decimal.NewFromFloat(w.debt.InterestRate).
				Div(decimal.NewFromInt(1200))
			interest := w.remaining.Mul(monthlyRate).Round(2)
			w.interest = w.interest.Add(interest)
			totalInterest = totalInterest.Add(interest)

			payment := decimal.NewFromFloat(w.debt.MinimumPayment)
			if !extraGranted {
				// todo el excedente del mes a la primera deuda activa
				payment = payment.Add(extraPool)
				extraGranted = true
			}

			// Si el pago no cubre el interés, el principal es negativo y
			// el saldo crece (amortización negativa)
			principal := payment.Sub(interest)
			if principal.GreaterThan(w.remaining) {
				principal = w.remaining
			}
			w.remaining = w.remaining.Sub(principal)
			if w.remaining.IsNegative() {
				w.remaining = decimal.Zero
			}

			if w.remaining.LessThanOrEqual(tolerance) {
				w.remaining = decimal.Zero
				w.paidOff = true
				w.payoffMonth = month
				// el mínimo liberado entra al pozo desde el mes siguiente
				freedThisMonth = freedThisMonth.Add(
					decimal.NewFromFloat(w.debt.MinimumPayment))
			}

			w.payments = append(w.payments, domain.PaymentRecord{
				Month:     month,
				Principal: principal.InexactFloat64(),
				Interest:  interest.InexactFloat64(),
				Balance:   w.remaining.InexactFloat64(),
			})
		}

		extraPool = extraPool.Add(freedThisMonth)
	}

	completed := true
	monthsToPayoff := 0
	schedules := make([]domain.DebtPayoffSchedule, 0, len(working))
	for _, w := range working {
		payoffMonth := w.payoffMonth
		if !w.paidOff {
			completed = false
			payoffMonth = monthsSimulated
		}
		if payoffMonth > monthsToPayoff {
			monthsToPayoff = payoffMonth
		}
		schedules = append(schedules, domain.DebtPayoffSchedule{
			DebtID:          w.debt.ID,
			DebtName:        w.debt.Name,
			OriginalBalance: roundTo2Decimals(w.debt.Balance),
			PayoffMonth:     payoffMonth,
			InterestPaid:    w.interest.InexactFloat64(),
			MonthlyPayments: w.payments,
		})
	}

	sort.SliceStable(schedules, func(i, j int) bool {
		return schedules[i].PayoffMonth < schedules[j].PayoffMonth
	})

	return domain.PayoffStrategy{
		TotalDebt:      totalDebt.InexactFloat64(),
		TotalInterest:  totalInterest.InexactFloat64(),
		MonthsToPayoff: monthsToPayoff,
		MonthlyPayment: monthlyBudget,
		Completed:      completed,
		PayoffOrder:    schedules,
	}, nil
}

func validateDebts(debts []domain.Debt) error {
	if len(debts) == 0 {
		return errors.New("no se proporcionaron deudas")
	}
	if len(debts) > MaxDebtsPerRequest {
		return fmt.Errorf("número de deudas excede el máximo de %d", MaxDebtsPerRequest)
	}

	debtIDs := make(map[string]bool)
	for _, debt := range debts {
		if debt.ID == "" {
			return errors.New("id de deuda no puede estar vacío")
		}
		if debtIDs[debt.ID] {
			return fmt.Errorf("id de deuda duplicado: %s", debt.ID)
		}
		debtIDs[debt.ID] = true

		if debt.Balance < 0 {
			return fmt.Errorf("saldo inválido para %s", debt.ID)
		}
		if debt.Balance > MaxDebtAmount {
			return fmt.Errorf("saldo de %s excede el máximo de $%.2f", debt.ID, float64(MaxDebtAmount))
		}
		if debt.InterestRate < 0 {
			return fmt.Errorf("tasa de interés inválida para %s", debt.ID)
		}
		if debt.InterestRate > MaxInterestRate {
			return fmt.Errorf("tasa de interés de %s excede el máximo de %.2f%%", debt.ID, float64(MaxInterestRate))
		}
		if debt.MinimumPayment < 0 {
			return fmt.Errorf("pago mínimo inválido para %s", debt.ID)
		}
	}
	return nil
}
