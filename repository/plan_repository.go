package repository

import "credit-engine/domain"

type PlanRepository interface {
	Save(record domain.PlanRecord) error
}
