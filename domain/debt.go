package domain

import "time"

// DebtType clasifica la deuda según su origen.
type DebtType string

const (
	DebtTypeCreditCard DebtType = "credit_card"
	DebtTypeLoan       DebtType = "loan"
	DebtTypeMortgage   DebtType = "mortgage"
	DebtTypeAuto       DebtType = "auto"
	DebtTypeStudent    DebtType = "student"
	DebtTypePersonal   DebtType = "personal"
	DebtTypeOther      DebtType = "other"
)

type Debt struct {
	ID             string
	Name           string
	Type           DebtType
	Balance        float64
	CreditLimit    float64 // 0 = sin límite de crédito asociado
	InterestRate   float64 // tasa anual en porcentaje
	MinimumPayment float64
	DueDate        string `json:",omitempty"` // fecha de corte, solo informativa
	Lender         string `json:",omitempty"`
}

// PaymentRecord is one month's movement on a single debt.
type PaymentRecord struct {
	Month     int
	Principal float64
	Interest  float64
	Balance   float64
}

// DebtPayoffSchedule is the full simulated history of one debt.
// PayoffMonth is 1-indexed; if the debt never closes within the
// simulation horizon it equals the number of months simulated.
type DebtPayoffSchedule struct {
	DebtID          string
	DebtName        string
	OriginalBalance float64
	PayoffMonth     int
	InterestPaid    float64
	MonthlyPayments []PaymentRecord
}

// PayoffStrategy is the outcome of simulating one payoff ordering.
// Completed is false when the simulation hit its month cap with
// balances still open (presupuesto insuficiente).
type PayoffStrategy struct {
	Strategy       string
	TotalDebt      float64
	TotalInterest  float64
	MonthsToPayoff int
	MonthlyPayment float64
	Completed      bool
	PayoffOrder    []DebtPayoffSchedule
}

type StrategyComparison struct {
	Avalanche      PayoffStrategy
	Snowball       PayoffStrategy
	InterestSaved  float64
	MonthsSaved    int
	Recommendation string
}

type DebtFreedomDate struct {
	Date      time.Time
	Strategy  string
	Completed bool
}

type PayoffPlanInput struct {
	Debts         []Debt
	MonthlyBudget float64
	Strategy      string // "avalanche", "snowball", "compare"
}

type FreedomDateInput struct {
	Debts         []Debt
	MonthlyBudget float64
	Method        string // "avalanche", "snowball"
}
