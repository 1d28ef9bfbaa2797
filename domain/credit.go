package domain

import "time"

// ScoreFactors is the raw input for the score estimation.
// Utilization and PaymentHistory are ratios in [0, 1].
type ScoreFactors struct {
	Utilization      float64
	PaymentHistory   float64
	AccountAgeMonths int
	AccountCount     int
	HardInquiries    int
	DerogatoryMarks  int
}

type FactorImpact string

const (
	FactorImpactHigh   FactorImpact = "high"
	FactorImpactMedium FactorImpact = "medium"
	FactorImpactLow    FactorImpact = "low"
)

type FactorStatus string

const (
	FactorStatusPositive FactorStatus = "positive"
	FactorStatusNegative FactorStatus = "negative"
	FactorStatusNeutral  FactorStatus = "neutral"
)

type CreditFactor struct {
	Name           string
	Impact         FactorImpact
	Status         FactorStatus
	Description    string
	Recommendation string `json:",omitempty"`
}

type CreditRating string

const (
	RatingExcellent CreditRating = "excellent"
	RatingGood      CreditRating = "good"
	RatingFair      CreditRating = "fair"
	RatingPoor      CreditRating = "poor"
	RatingVeryPoor  CreditRating = "very_poor"
)

type CreditScore struct {
	Score        int
	Rating       CreditRating
	Factors      []CreditFactor
	CalculatedAt time.Time
}

// CreditAccount is one revolving account as reported by the caller.
type CreditAccount struct {
	ID          string
	Name        string
	Balance     float64
	CreditLimit float64
}

type AccountUtilization struct {
	AccountID   string
	Name        string
	Balance     float64
	CreditLimit float64
	Utilization float64 // porcentaje
}

type UtilizationHealth string

const (
	UtilizationExcellent UtilizationHealth = "excellent"
	UtilizationGood      UtilizationHealth = "good"
	UtilizationFair      UtilizationHealth = "fair"
	UtilizationPoor      UtilizationHealth = "poor"
)

type CreditUtilization struct {
	Overall        float64
	Accounts       []AccountUtilization
	Health         UtilizationHealth
	Recommendation string
}

type UtilizationInput struct {
	Accounts []CreditAccount
}
