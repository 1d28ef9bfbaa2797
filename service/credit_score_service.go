package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"credit-engine/domain"
)

// CreditScoreService estimates a synthetic credit score from self-reported
// factors. It is an additive weighted model over a fixed 850-point ceiling,
// not a bureau score.
type CreditScoreService struct{}

func NewCreditScoreService() *CreditScoreService {
	return &CreditScoreService{}
}

// EstimateCreditScore scores the given factors. The factor list keeps a
// fixed order (historial, utilización, antigüedad, cuentas, consultas,
// marcas derogatorias) para que la UI lo muestre siempre igual.
func (s *CreditScoreService) EstimateCreditScore(
	factors domain.ScoreFactors,
	now time.Time,
) (domain.CreditScore, error) {

	if factors.Utilization < 0 || factors.Utilization > 1 {
		return domain.CreditScore{}, errors.New("utilización inválida: debe estar entre 0 y 1")
	}
	if factors.PaymentHistory < 0 || factors.PaymentHistory > 1 {
		return domain.CreditScore{}, errors.New("historial de pagos inválido: debe estar entre 0 y 1")
	}
	if factors.AccountAgeMonths < 0 {
		return domain.CreditScore{}, errors.New("antigüedad de cuentas inválida")
	}
	if factors.AccountCount < 0 {
		return domain.CreditScore{}, errors.New("número de cuentas inválido")
	}
	if factors.HardInquiries < 0 {
		return domain.CreditScore{}, errors.New("número de consultas inválido")
	}
	if factors.DerogatoryMarks < 0 {
		return domain.CreditScore{}, errors.New("número de marcas derogatorias inválido")
	}

	score := float64(ScoreFloor)
	creditFactors := []domain.CreditFactor{}

	// Historial de pagos (35%)
	score += math.Round(factors.PaymentHistory * ScoreCeiling * PaymentHistoryWeight)
	paymentStatus := domain.FactorStatusPositive
	if factors.PaymentHistory <= 0.8 {
		paymentStatus = domain.FactorStatusNegative
	} else if factors.PaymentHistory <= 0.95 {
		paymentStatus = domain.FactorStatusNeutral
	}
	paymentRecommendation := ""
	if factors.PaymentHistory < 0.95 {
		paymentRecommendation = "Activa pagos automáticos para no volver a atrasarte."
	}
	creditFactors = append(creditFactors, domain.CreditFactor{
		Name:           "Historial de pagos",
		Impact:         domain.FactorImpactHigh,
		Status:         paymentStatus,
		Description:    fmt.Sprintf("Has pagado a tiempo el %.0f%% de tus obligaciones.", factors.PaymentHistory*100),
		Recommendation: paymentRecommendation,
	})

	// Utilización de crédito (30%): el beneficio se agota al llegar al 50%
	utilizationCredit := 1 - math.Min(1, factors.Utilization*2)
	score += math.Round(utilizationCredit * ScoreCeiling * UtilizationWeight)
	utilizationStatus := domain.FactorStatusPositive
	if factors.Utilization >= 0.5 {
		utilizationStatus = domain.FactorStatusNegative
	} else if factors.Utilization >= 0.3 {
		utilizationStatus = domain.FactorStatusNeutral
	}
	creditFactors = append(creditFactors, domain.CreditFactor{
		Name:           "Utilización de crédito",
		Impact:         domain.FactorImpactHigh,
		Status:         utilizationStatus,
		Description:    fmt.Sprintf("Estás usando el %.0f%% de tu crédito disponible.", factors.Utilization*100),
		Recommendation: "Mantén la utilización por debajo del 30% de tu límite.",
	})

	// Antigüedad crediticia (15%), tope a los 10 años
	score += math.Round(math.Min(1, float64(factors.AccountAgeMonths)/AccountAgeCapMonths) * ScoreCeiling * AccountAgeWeight)
	ageStatus := domain.FactorStatusNeutral
	if factors.AccountAgeMonths >= AccountAgeCapMonths {
		ageStatus = domain.FactorStatusPositive
	}
	creditFactors = append(creditFactors, domain.CreditFactor{
		Name:        "Antigüedad crediticia",
		Impact:      domain.FactorImpactMedium,
		Status:      ageStatus,
		Description: fmt.Sprintf("Tu cuenta más antigua tiene %d meses.", factors.AccountAgeMonths),
	})

	// Mezcla de cuentas (10%), tope en 5 cuentas
	score += math.Round(math.Min(1, float64(factors.AccountCount)/AccountMixCapAccounts) * ScoreCeiling * AccountMixWeight)
	mixStatus := domain.FactorStatusNeutral
	if factors.AccountCount >= 3 {
		mixStatus = domain.FactorStatusPositive
	}
	creditFactors = append(creditFactors, domain.CreditFactor{
		Name:        "Mezcla de cuentas",
		Impact:      domain.FactorImpactLow,
		Status:      mixStatus,
		Description: fmt.Sprintf("Tienes %d cuentas de crédito activas.", factors.AccountCount),
	})

	// Consultas recientes: -10 puntos cada una, tope -85
	score -= math.Min(float64(factors.HardInquiries*InquiryPenaltyPoints), MaxInquiryPenalty)
	if factors.HardInquiries > 2 {
		creditFactors = append(creditFactors, domain.CreditFactor{
			Name:           "Consultas recientes",
			Impact:         domain.FactorImpactMedium,
			Status:         domain.FactorStatusNegative,
			Description:    fmt.Sprintf("Tienes %d consultas duras recientes.", factors.HardInquiries),
			Recommendation: "Evita solicitar crédito nuevo durante los próximos meses.",
		})
	}

	// Marcas derogatorias: -50 puntos cada una
	score -= float64(factors.DerogatoryMarks * DerogatoryPenaltyPoints)
	if factors.DerogatoryMarks > 0 {
		creditFactors = append(creditFactors, domain.CreditFactor{
			Name:           "Marcas derogatorias",
			Impact:         domain.FactorImpactHigh,
			Status:         domain.FactorStatusNegative,
			Description:    fmt.Sprintf("Tu expediente registra %d marcas derogatorias.", factors.DerogatoryMarks),
			Recommendation: "Negocia o liquida las cuentas en cobranza cuanto antes.",
		})
	}

	final := int(math.Round(score))
	if final < ScoreFloor {
		final = ScoreFloor
	}
	if final > ScoreCeiling {
		final = ScoreCeiling
	}

	return domain.CreditScore{
		Score:        final,
		Rating:       ratingForScore(final),
		Factors:      creditFactors,
		CalculatedAt: now,
	}, nil
}

func ratingForScore(score int) domain.CreditRating {
	switch {
	case score >= 800:
		return domain.RatingExcellent
	case score >= 700:
		return domain.RatingGood
	case score >= 650:
		return domain.RatingFair
	case score >= 550:
		return domain.RatingPoor
	default:
		return domain.RatingVeryPoor
	}
}
