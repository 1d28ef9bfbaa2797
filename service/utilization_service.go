package service

import (
	"fmt"
	"math"
	"sort"

	"credit-engine/domain"
)

// UtilizationService aggregates balance/limit pairs into per-account and
// overall credit utilization with a health band.
type UtilizationService struct{}

func NewUtilizationService() *UtilizationService {
	return &UtilizationService{}
}

// CalculateUtilization only considers accounts with a positive credit
// limit; sin cuentas revolventes la utilización es 0 y la salud excellent.
// Saldos negativos (a favor) cuentan por su valor absoluto.
func (s *UtilizationService) CalculateUtilization(
	accounts []domain.CreditAccount,
) domain.CreditUtilization {

	relevant := make([]domain.CreditAccount, 0, len(accounts))
	for _, account := range accounts {
		if account.CreditLimit > 0 {
			relevant = append(relevant, account)
		}
	}

	if len(relevant) == 0 {
		return domain.CreditUtilization{
			Overall:        0,
			Health:         domain.UtilizationExcellent,
			Recommendation: "No tienes cuentas de crédito revolvente con límite definido.",
		}
	}

	totalBalance := 0.0
	totalLimit := 0.0
	breakdown := make([]domain.AccountUtilization, 0, len(relevant))
	overLimitAccounts := 0

	for _, account := range relevant {
		balance := math.Abs(account.Balance)
		totalBalance += balance
		totalLimit += account.CreditLimit

		utilization := 0.0
		if account.CreditLimit > 0 {
			utilization = roundTo2Decimals(100 * balance / account.CreditLimit)
		}
		if utilization > 50 {
			overLimitAccounts++
		}
		breakdown = append(breakdown, domain.AccountUtilization{
			AccountID:   account.ID,
			Name:        account.Name,
			Balance:     roundTo2Decimals(account.Balance),
			CreditLimit: account.CreditLimit,
			Utilization: utilization,
		})
	}

	overall := 0.0
	if totalLimit > 0 {
		overall = roundTo2Decimals(100 * totalBalance / totalLimit)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Utilization > breakdown[j].Utilization
	})

	health, recommendation := utilizationHealth(overall)
	if overLimitAccounts > 0 {
		recommendation += fmt.Sprintf(
			" Además, %d de tus cuentas supera el 50%% de utilización; amortiza esas primero.",
			overLimitAccounts)
	}

	return domain.CreditUtilization{
		Overall:        overall,
		Accounts:       breakdown,
		Health:         health,
		Recommendation: recommendation,
	}
}

func utilizationHealth(overall float64) (domain.UtilizationHealth, string) {
	switch {
	case overall < 10:
		return domain.UtilizationExcellent,
			"Excelente: tu utilización es muy baja. Mantén este nivel para proteger tu puntaje."
	case overall < 30:
		return domain.UtilizationGood,
			"Buena utilización. Mantenerla por debajo del 30% cuida tu puntaje crediticio."
	case overall < 50:
		return domain.UtilizationFair,
			"Utilización moderada. Intenta bajar del 30% para mejorar tu puntaje."
	default:
		return domain.UtilizationPoor,
			"Utilización alta. Reduce tus saldos por debajo del 50% de tus límites cuanto antes."
	}
}
