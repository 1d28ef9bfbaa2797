package service

const (
	MaxInterestRate      = 1000.0        // 1000% anual
	MaxDebtAmount        = 100_000_000.0 // 100 millones
	MaxDebtsPerRequest   = 50            // máximo de deudas por request
	MaxSimulationMonths  = 360           // 30 años, tope duro de la simulación
	DebtBalanceTolerance = 0.01          // tolerancia para considerar deuda pagada

	// Modelo de puntaje crediticio
	ScoreFloor   = 300
	ScoreCeiling = 850

	PaymentHistoryWeight = 0.35
	UtilizationWeight    = 0.30
	AccountAgeWeight     = 0.15
	AccountMixWeight     = 0.10

	AccountAgeCapMonths     = 120 // 10 años de historial ya no suman más
	AccountMixCapAccounts   = 5
	InquiryPenaltyPoints    = 10
	MaxInquiryPenalty       = 85
	DerogatoryPenaltyPoints = 50

	// Umbrales de recomendación de estrategia
	AvalancheSavingsThreshold = 500.0
	QuickWinBalanceThreshold  = 1000.0
)
