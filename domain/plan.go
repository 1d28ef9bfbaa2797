package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanRecord is the summary kept for every computed payoff plan.
// ID and CreatedAt are assigned by the repository on save.
type PlanRecord struct {
	ID             uuid.UUID
	Strategy       string
	TotalDebt      float64
	TotalInterest  float64
	MonthsToPayoff int
	Completed      bool
	CreatedAt      time.Time
}
